// Package writer emits the output workbook with styled headers and
// readable column widths.
package writer

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"gearsheet/pkg/gearsheet/models"
)

// ErrWriteFailure indicates the output workbook could not be created or saved.
var ErrWriteFailure = errors.New("write failure")

// DefaultHeaderColor is the fill used for header cells with no configured color.
const DefaultHeaderColor = "D9D9D9"

const (
	minColWidth = 6
	maxColWidth = 48
	// colPadding widens each column slightly past its longest value.
	colPadding = 2
)

// Write creates a single workbook at path containing one sheet per table,
// in table order. Header cells get a bold style filled with the sheet's
// configured color for that header (DefaultHeaderColor when unset), data
// rows follow in order, and each column is sized to its widest value.
// Either the whole workbook is saved or an error wrapping ErrWriteFailure
// is returned.
func Write(path string, tables []models.Table, colors map[string]map[string]string) error {
	if len(tables) == 0 {
		return fmt.Errorf("%w: no sheets to write", ErrWriteFailure)
	}

	f := excelize.NewFile()
	defer f.Close()

	// Styles are keyed by fill color so sheets sharing a color share a style.
	styles := make(map[string]int)

	for i, table := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", table.Sheet); err != nil {
				return fmt.Errorf("%w: naming sheet %q: %v", ErrWriteFailure, table.Sheet, err)
			}
		} else {
			if _, err := f.NewSheet(table.Sheet); err != nil {
				return fmt.Errorf("%w: creating sheet %q: %v", ErrWriteFailure, table.Sheet, err)
			}
		}

		if err := writeSheet(f, table, colors[table.Sheet], styles); err != nil {
			return err
		}

		log.Info().
			Str("sheet", table.Sheet).
			Int("columns", len(table.Headers)).
			Int("rows", len(table.Rows)).
			Msg("Wrote sheet")
	}

	first, err := f.GetSheetIndex(tables[0].Sheet)
	if err == nil && first >= 0 {
		f.SetActiveSheet(first)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: saving %s: %v", ErrWriteFailure, path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, table models.Table, colors map[string]string, styles map[string]int) error {
	widths := make([]int, len(table.Headers))

	for col, header := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("%w: sheet %q: %v", ErrWriteFailure, table.Sheet, err)
		}
		if err := f.SetCellValue(table.Sheet, cell, header); err != nil {
			return fmt.Errorf("%w: sheet %q cell %s: %v", ErrWriteFailure, table.Sheet, cell, err)
		}

		color := colors[header]
		if color == "" {
			color = DefaultHeaderColor
		}
		styleID, err := headerStyle(f, color, styles)
		if err != nil {
			return fmt.Errorf("%w: sheet %q header style: %v", ErrWriteFailure, table.Sheet, err)
		}
		if err := f.SetCellStyle(table.Sheet, cell, cell, styleID); err != nil {
			return fmt.Errorf("%w: sheet %q cell %s: %v", ErrWriteFailure, table.Sheet, cell, err)
		}

		widths[col] = len(header)
	}

	for rowIdx, row := range table.Rows {
		for col, value := range row {
			if col >= len(table.Headers) {
				break
			}
			if len(value) > widths[col] {
				widths[col] = len(value)
			}
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("%w: sheet %q: %v", ErrWriteFailure, table.Sheet, err)
			}
			if err := f.SetCellValue(table.Sheet, cell, cellValue(value)); err != nil {
				return fmt.Errorf("%w: sheet %q cell %s: %v", ErrWriteFailure, table.Sheet, cell, err)
			}
		}
	}

	for col := range table.Headers {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("%w: sheet %q: %v", ErrWriteFailure, table.Sheet, err)
		}
		width := clampWidth(widths[col] + colPadding)
		if err := f.SetColWidth(table.Sheet, name, name, float64(width)); err != nil {
			return fmt.Errorf("%w: sheet %q column %s: %v", ErrWriteFailure, table.Sheet, name, err)
		}
	}

	return nil
}

func headerStyle(f *excelize.File, color string, styles map[string]int) (int, error) {
	if id, ok := styles[color]; ok {
		return id, nil
	}
	id, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return 0, err
	}
	styles[color] = id
	return id, nil
}

func clampWidth(w int) int {
	if w < minColWidth {
		return minColWidth
	}
	if w > maxColWidth {
		return maxColWidth
	}
	return w
}
