package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the process wide structured logger.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

func InitLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
		With().Timestamp().Logger()
}
