// Package logging builds the zerolog logger used by the tst command.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/ternary-search-tree/internal/config"
)

// New returns a logger writing to w at the configured level. The console
// format is meant for terminals, json for machine consumption.
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var out io.Writer
	switch cfg.Format {
	case config.LogFormatJSON:
		out = w
	case config.LogFormatConsole, "":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", config.ErrUnsupportedLogFormat, cfg.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
