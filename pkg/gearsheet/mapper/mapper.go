// Package mapper projects parsed materials onto configured sheet layouts.
package mapper

import (
	"github.com/rs/zerolog/log"

	"gearsheet/pkg/gearsheet/models"
)

// Project builds the output table for one sheet: for every material in dump
// order, it selects the configured headers in their declared order, using
// the empty string for columns absent from the dump. It is a pure
// projection; no values are transformed and no rows are reordered.
func Project(dump *models.Dump, sheet string, headers []string) models.Table {
	for _, h := range headers {
		if !dump.HasColumn(h) {
			log.Debug().
				Str("sheet", sheet).
				Str("header", h).
				Msg("Configured header not present in dump, projecting empty column")
		}
	}

	rows := make([][]string, 0, len(dump.Materials))
	for _, mat := range dump.Materials {
		row := make([]string, len(headers))
		for i, h := range headers {
			row[i] = mat.Get(h)
		}
		rows = append(rows, row)
	}

	return models.Table{
		Sheet:   sheet,
		Headers: append([]string(nil), headers...),
		Rows:    rows,
	}
}
