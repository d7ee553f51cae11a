package gearsheet

import (
	"github.com/rs/zerolog/log"

	"gearsheet/pkg/gearsheet/config"
	"gearsheet/pkg/gearsheet/mapper"
	"gearsheet/pkg/gearsheet/models"
	"gearsheet/pkg/gearsheet/parser"
	"gearsheet/pkg/gearsheet/writer"
)

// Convert runs the whole pipeline once: parse the material export at
// inputPath, project it onto each configured sheet, and write the styled
// workbook. The run either produces the complete workbook or returns the
// first error; there is no partial output.
func Convert(inputPath string, cfg *config.Config, opts Options) error {
	dump, err := parser.ReadDump(inputPath)
	if err != nil {
		return err
	}

	sections := cfg.Sections()

	tables := make([]models.Table, 0, len(sections))
	colors := make(map[string]map[string]string, len(sections))
	for _, section := range sections {
		table := mapper.Project(dump, section.Title, section.Headers)
		tables = append(tables, table)
		colors[section.Title] = section.Colors
	}

	outputPath := opts.OutputPath()
	if err := writer.Write(outputPath, tables, colors); err != nil {
		return err
	}

	log.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("materials", len(dump.Materials)).
		Int("sheets", len(tables)).
		Msg("Conversion complete")
	return nil
}
