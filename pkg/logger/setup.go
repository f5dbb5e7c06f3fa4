// Package logger configura o logger global (zerolog) do toolkit.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/raywall/supplychain-toolkit/pkg/config"
)

// Configure aplica a configuração de logging e devolve o logger raiz.
// Também ajusta o nível global do zerolog, então afeta log.Logger.
func Configure(cfg config.LoggingConf) zerolog.Logger {
	zerolog.SetGlobalLevel(levelFrom(cfg.Level))

	return zerolog.New(writerFor(cfg)).
		With().
		Timestamp().
		Logger()
}

// levelFrom traduz o nível da config; vazio ou inválido cai em info.
func levelFrom(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil || name == "" {
		return zerolog.InfoLevel
	}
	return level
}

// writerFor escolhe o destino: descarte quando desligado, console legível
// para desenvolvimento local, JSON em stdout no resto.
func writerFor(cfg config.LoggingConf) io.Writer {
	switch {
	case !cfg.Enabled:
		return io.Discard
	case cfg.Format == "console":
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	default:
		return os.Stdout
	}
}
