package utils

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	InfoLog  *slog.Logger
	ErrorLog *slog.Logger
)

// InicializarLogger configura los loggers globales. Escribe en stderr para
// no mezclarse con los resultados que el simulador imprime en stdout.
func InicializarLogger(logLevel string, moduleName string) *slog.Logger {
	return InicializarLoggerEn(os.Stderr, logLevel, moduleName)
}

// InicializarLoggerEn es InicializarLogger con un destino explícito
func InicializarLoggerEn(w io.Writer, logLevel string, moduleName string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: NivelLog(logLevel),
	})

	logger := slog.New(handler).With("modulo", moduleName)

	InfoLog = logger
	ErrorLog = logger
	slog.SetDefault(logger)

	return logger
}

// NivelLog traduce LOG_LEVEL; los valores desconocidos equivalen a info
func NivelLog(logLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
