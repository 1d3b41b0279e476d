package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Log discards everything until Init is called, so packages can log freely
// from tests.
var Log = zerolog.Nop()

// Path returns the log file location, preferring the user config directory.
func Path() string {
	logPath := "/tmp/tapedeck.log"
	configDir, err := os.UserConfigDir()
	if err == nil {
		deckDir := filepath.Join(configDir, "tapedeck")
		if err := os.MkdirAll(deckDir, 0755); err == nil {
			logPath = filepath.Join(deckDir, "tapedeck.log")
		}
	}
	return logPath
}

// Init points Log at the file at logPath. The terminal belongs to the UI, so
// nothing is ever written to stdout or stderr.
func Init(logPath, level string) (io.Closer, error) {
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	Log = zerolog.New(file).Level(lvl).With().Timestamp().Caller().Logger()
	Log.Info().Str("path", logPath).Msg("Logger initialized")
	return file, nil
}
