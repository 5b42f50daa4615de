package entities

import "time"

// QuoteExport is the rendering input for spreadsheet export.
type QuoteExport struct {
	QuoteID string
	Manager string
	Date    time.Time
	Lines   []QuoteExportLine
}

type QuoteExportLine struct {
	Code string
	Name string
	Unit string
	Qty  int64
	Note string
}
