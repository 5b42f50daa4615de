package entities

// Technique is a piece of machinery: manufacturer + model + optional series.
type Technique struct {
	ID           int64   `json:"id"`
	Manufacturer string  `json:"manufacturer"`
	Model        string  `json:"model"`
	Series       *string `json:"series,omitempty"`
	Active       bool    `json:"active"`
}

// Zone is a protected area of a technique, selected per quote.
type Zone struct {
	Code   string `json:"code"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// SKU is a stock item that appears in a bill of materials.
type SKU struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	Active bool   `json:"active"`
}

// EngineOption is a catalog engine for a technique.
type EngineOption struct {
	ID          int64  `json:"id"`
	TechniqueID int64  `json:"technique_id"`
	EngineName  string `json:"engine_name"`
	YearFrom    *int   `json:"year_from,omitempty"`
	YearTo      *int   `json:"year_to,omitempty"`
	Active      bool   `json:"active"`
}
