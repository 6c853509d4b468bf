package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/san-kum/radsim/internal/request"
)

// WriteXLSX saves the curve set as a single-sheet workbook, one column
// per series, streamed row by row.
func WriteXLSX(path, sheet string, c request.Curves) error {
	if sheet == "" {
		sheet = "Curves"
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheet)

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, 0, len(c.Series)+1)
	header = append(header, c.XLabel)
	for _, s := range c.Series {
		header = append(header, s.Label)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, x := range c.X {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := make([]interface{}, 0, len(c.Series)+1)
		row = append(row, x)
		for _, s := range c.Series {
			row = append(row, s.Values[i])
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}
