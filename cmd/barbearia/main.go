package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/marcondescastro18/barbearia-cli/internal/api"
	"github.com/marcondescastro18/barbearia-cli/internal/config"
	"github.com/marcondescastro18/barbearia-cli/internal/session"
	"github.com/marcondescastro18/barbearia-cli/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "barbearia:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("конфигурация: %w", err)
	}

	if err = os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return fmt.Errorf("каталог данных %s: %w", cfg.DataDir, err)
	}

	// Логи пишутся в файл: терминал занят интерфейсом.
	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("логгер: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	zap.L().Info("клиент запускается",
		zap.String("server", cfg.ServerURL),
		zap.String("env", cfg.Environment))

	store, err := session.Open(cfg.SessionPath())
	if err != nil {
		return fmt.Errorf("хранилище сессии: %w", err)
	}
	defer store.Close()

	client := api.NewHTTPClient(cfg.ServerURL, store, nil)

	return tui.Start(store, client, cfg.LockPath(), cfg.Debug)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Environment == "development" {
		zcfg = zap.NewDevelopmentConfig()
	}
	if cfg.Debug {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zcfg.OutputPaths = []string{cfg.LogPath()}
	zcfg.ErrorOutputPaths = []string{cfg.LogPath()}
	return zcfg.Build()
}
