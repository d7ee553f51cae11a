// Package parser reads Silent Gear's tab-separated material export.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"gearsheet/pkg/gearsheet/models"
)

// ErrInputNotFound indicates the input dump file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ErrMalformedInput indicates the input dump is empty or has no header row.
var ErrMalformedInput = errors.New("malformed input")

// ReadDump reads a material export file into memory. The first line is the
// tab-separated header; every following non-empty line becomes one Material
// keyed by that header. Fields are split strictly on tab with no quoting,
// matching the dump command's output. Rows shorter than the header are
// padded with empty values; fields beyond the header are dropped. Row order
// is preserved.
func ReadDump(path string) (*models.Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s is empty", ErrMalformedInput, path)
	}

	headerLine := strings.TrimRight(scanner.Text(), "\r")
	if strings.TrimSpace(headerLine) == "" {
		return nil, fmt.Errorf("%w: %s has a blank header row", ErrMalformedInput, path)
	}
	headers := strings.Split(headerLine, "\t")

	var materials []models.Material
	padded, truncated := 0, 0
	row := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		row++

		fields := strings.Split(line, "\t")
		if len(fields) < len(headers) {
			padded++
		} else if len(fields) > len(headers) {
			truncated++
		}
		materials = append(materials, models.NewMaterial(row, headers, fields))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if padded > 0 || truncated > 0 {
		log.Warn().
			Str("file", path).
			Int("padded_rows", padded).
			Int("truncated_rows", truncated).
			Msg("Dump rows did not match header width")
	}

	log.Debug().
		Str("file", path).
		Int("columns", len(headers)).
		Int("materials", len(materials)).
		Msg("Parsed material export")

	return &models.Dump{
		Headers:   headers,
		Materials: materials,
	}, nil
}
