package helpers

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteSheet writes a single-sheet workbook with a bold header row to w.
func WriteSheet(w io.Writer, sheet string, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	hdr := make([]any, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &hdr); err != nil {
		return err
	}
	if len(header) > 0 {
		last, err := excelize.CoordinatesToCellName(len(header), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return err
		}
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := r
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	_, err = f.WriteTo(w)
	return err
}
