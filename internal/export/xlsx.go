// Package export encodes logical report tables into XLSX workbooks. It is
// the serialization collaborator of the reporting engine: the engine decides
// rows, columns and formatting intent; this package produces bytes.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/oakinyemi/masjid-receipts/internal/report"
)

const (
	headerFillColor = "4472C4"
	headerFontColor = "FFFFFF"
	defaultColWidth = 18
)

// EncodeXLSX renders the sheets into a single workbook and returns its bytes.
func EncodeXLSX(sheets []report.Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets to encode")
	}

	f := excelize.NewFile()
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: headerFontColor},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("bold style: %w", err)
	}

	for i, sheet := range sheets {
		name := sheet.Name
		if i == 0 {
			// excelize always creates "Sheet1"; rename it for the first sheet.
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("new sheet %q: %w", name, err)
			}
		}
		if err := writeTable(f, name, sheet.Table, headerStyle, boldStyle); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
	}

	first, _ := f.GetSheetIndex(sheets[0].Name)
	f.SetActiveSheet(first)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, sheet string, table report.Table, headerStyle, boldStyle int) error {
	row := 1
	if len(table.Headers) > 0 {
		for col, h := range table.Headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return err
			}
			_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
		}
		row++
	}

	for _, cells := range table.Rows {
		if err := writeCells(f, sheet, row, cells, boldStyle); err != nil {
			return err
		}
		row++
	}

	if len(table.TotalsRow) > 0 {
		row++ // blank spacer before the totals row
		if err := writeCells(f, sheet, row, table.TotalsRow, boldStyle); err != nil {
			return err
		}
	}

	width := len(table.Headers)
	for _, cells := range table.Rows {
		if len(cells) > width {
			width = len(cells)
		}
	}
	if width > 0 {
		last, _ := excelize.ColumnNumberToName(width)
		_ = f.SetColWidth(sheet, "A", last, defaultColWidth)
	}
	return nil
}

func writeCells(f *excelize.File, sheet string, row int, cells []report.Cell, boldStyle int) error {
	for col, c := range cells {
		if c.Value == nil {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		if err := f.SetCellValue(sheet, cell, c.Value); err != nil {
			return err
		}
		if c.Bold {
			_ = f.SetCellStyle(sheet, cell, cell, boldStyle)
		}
	}
	return nil
}

// Filename builds the attachment name for an export, e.g.
// masjid_receipts_2024-03-01.xlsx.
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, now.Format("2006-01-02"))
}
