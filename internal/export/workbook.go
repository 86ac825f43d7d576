// Package export writes loaded spin configurations and observable series to
// an Excel workbook, one sheet per matrix or plot.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/isingplot/internal/lattice"
	"github.com/san-kum/isingplot/internal/series"
)

// maxSheetName is Excel's limit on sheet name length.
const maxSheetName = 31

const defaultSheet = "Sheet1"

// ErrDuplicateSheet is returned when two names map to the same sheet, either
// verbatim or after truncation. Excel compares sheet names without case.
var ErrDuplicateSheet = errors.New("export: duplicate sheet name")

type Workbook struct {
	f       *excelize.File
	upStyle int
	sheets  int
	used    map[string]bool
}

func NewWorkbook() (*Workbook, error) {
	f := excelize.NewFile()
	up, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FF0000"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Workbook{f: f, upStyle: up, used: make(map[string]bool)}, nil
}

// SheetName trims name to the length Excel accepts.
func SheetName(name string) string {
	r := []rune(name)
	if len(r) > maxSheetName {
		r = r[:maxSheetName]
	}
	return string(r)
}

func (w *Workbook) newSheet(name string) (string, error) {
	sheet := SheetName(name)
	key := strings.ToLower(sheet)
	if w.used[key] {
		return "", fmt.Errorf("%w: %q", ErrDuplicateSheet, sheet)
	}
	if _, err := w.f.NewSheet(sheet); err != nil {
		return "", fmt.Errorf("sheet %s: %w", sheet, err)
	}
	if w.sheets == 0 && sheet != defaultSheet {
		if err := w.f.DeleteSheet(defaultSheet); err != nil {
			return "", err
		}
	}
	w.used[key] = true
	w.sheets++
	return sheet, nil
}

// AddMatrix writes m in file row order; +1 cells are filled red.
func (w *Workbook) AddMatrix(name string, m lattice.SpinMatrix) error {
	sheet, err := w.newSheet(name)
	if err != nil {
		return err
	}

	for i, row := range m {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		start, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := w.f.SetSheetRow(sheet, start, &cells); err != nil {
			return err
		}

		for j, v := range row {
			if v <= 0 {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := w.f.SetCellStyle(sheet, cell, cell, w.upStyle); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddSeries writes an x/y column pair per series under a label header.
func (w *Workbook) AddSeries(name string, ss []series.Series) error {
	sheet, err := w.newSheet(name)
	if err != nil {
		return err
	}

	for k, s := range ss {
		col := 2*k + 1
		header := []interface{}{s.Label + " x", s.Label + " y"}
		start, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			return err
		}
		if err := w.f.SetSheetRow(sheet, start, &header); err != nil {
			return err
		}

		for i := 0; i < s.Len(); i++ {
			x, y := s.XY(i)
			start, err := excelize.CoordinatesToCellName(col, i+2)
			if err != nil {
				return err
			}
			if err := w.f.SetSheetRow(sheet, start, &[]interface{}{x, y}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Sheets returns the sheet names in workbook order.
func (w *Workbook) Sheets() []string {
	return w.f.GetSheetList()
}

func (w *Workbook) SaveAs(path string) error {
	return w.f.SaveAs(path)
}

func (w *Workbook) Close() error {
	return w.f.Close()
}
