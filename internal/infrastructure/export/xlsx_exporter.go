package export

import (
	"context"
	"fmt"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"github.com/alexVinter/fire-dynamics1/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	sheetName      = "Quote"
	dateLayout     = "02.01.2006"
	tableHeaderRow = 5
)

var tableHeader = []interface{}{"Code", "Name", "Unit", "Qty", "Note"}

// XLSXExporter renders the bill of materials of a quote as a single sheet:
// a header block (date, quote, manager), a bold column header and one row
// per result line.
type XLSXExporter struct{}

var _ interfaces.IQuoteExporter = (*XLSXExporter)(nil)

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) Render(_ context.Context, doc entities.QuoteExport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			zap.L().Warn("[quote][export] close workbook", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	header := [][]interface{}{
		{"Date", doc.Date.Format(dateLayout)},
		{"Quote", doc.QuoteID},
		{"Manager", doc.Manager},
	}
	for i, row := range header {
		if err := f.SetSheetRow(sheetName, cell(1, i+1), &row); err != nil {
			return nil, err
		}
	}

	if err := f.SetSheetRow(sheetName, cell(1, tableHeaderRow), &tableHeader); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, cell(1, tableHeaderRow), cell(len(tableHeader), tableHeaderRow), bold); err != nil {
		return nil, err
	}

	for i, l := range doc.Lines {
		row := []interface{}{l.Code, l.Name, l.Unit, l.Qty, l.Note}
		if err := f.SetSheetRow(sheetName, cell(1, tableHeaderRow+1+i), &row); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 16); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "B", "B", 48); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "E", "E", 32); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
