package logger

import (
	"context"

	"github.com/rs/zerolog"
)

type ZLogger = zerolog.Logger

var Logger = zerolog.Nop()

func Ctx(ctx context.Context) *ZLogger {
	return zerolog.Ctx(ctx)
}

func With() zerolog.Context {
	return Logger.With()
}

func Debug() *zerolog.Event { return Logger.Debug() }
func Info() *zerolog.Event  { return Logger.Info() }
func Warn() *zerolog.Event  { return Logger.Warn() }
func Error() *zerolog.Event { return Logger.Error() }
func Fatal() *zerolog.Event { return Logger.Fatal() }
