// Package app wires up the process environment: .env loading, logging, and
// environment-derived defaults.
package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gearsheet/pkg/gearsheet"
)

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	ApplyLogLevel(os.Getenv("LOGLEVEL"))

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found; proceeding with existing environment variables.")
	}
}

// ApplyLogLevel sets the global zerolog level from a level name. An empty
// name keeps the default (warn); an unknown name falls back to warn with a
// notice.
func ApplyLogLevel(levelStr string) {
	switch strings.ToLower(levelStr) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to warn.", levelStr)
	}
}

// OutputPath resolves the workbook output path: the flag value wins, then
// the GEARSHEET_OUTPUT environment variable, then the built-in default.
func OutputPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("GEARSHEET_OUTPUT"); env != "" {
		return env
	}
	return gearsheet.DefaultOutput
}
