package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nkartsev/artvault/internal/client/cli"
	"github.com/nkartsev/artvault/internal/client/config"
	"github.com/nkartsev/artvault/internal/filex"
	"github.com/nkartsev/artvault/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger, closeLog := newLogger(cfg)
	defer closeLog()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())
}

// newLogger writes structured logs to a file in the data directory so the
// interactive prompt stays clean. Falls back to stderr when the file
// cannot be opened.
func newLogger(cfg *config.Config) (logging.Logger, func()) {
	if _, err := filex.EnsureDir(cfg.DataDir); err != nil {
		return logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))), func() {}
	}
	path := filepath.Join(cfg.DataDir, "artvault.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))), func() {}
	}
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(f, nil))), func() { _ = f.Close() }
}
