package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Значения по умолчанию.
const (
	defaultServerURL = "http://localhost:3000"
	defaultDataDir   = ".barbearia"
	defaultEnv       = "development"
)

// Config — конфигурация клиента. Источники: .env файл (если есть),
// затем переменные окружения.
type Config struct {
	ServerURL   string // URL сервера бронирования (BARBEARIA_SERVER_URL)
	DataDir     string // Каталог для session.db, lock-файла и логов (BARBEARIA_DATA_DIR)
	Environment string // development | production (BARBEARIA_ENV)
	Debug       bool   // Отладочная панель в TUI (BARBEARIA_DEBUG=1)
}

// Load читает конфигурацию. Отсутствие .env не ошибка — работаем
// с переменными окружения и значениями по умолчанию.
func Load() (*Config, error) {
	// Ошибку загрузки .env игнорируем: файл опционален
	_ = godotenv.Load(".env")

	cfg := &Config{
		ServerURL:   os.Getenv("BARBEARIA_SERVER_URL"),
		DataDir:     os.Getenv("BARBEARIA_DATA_DIR"),
		Environment: os.Getenv("BARBEARIA_ENV"),
		Debug:       os.Getenv("BARBEARIA_DEBUG") == "1",
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = defaultServerURL
	}
	if cfg.Environment == "" {
		cfg.Environment = defaultEnv
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// Нет домашнего каталога — работаем из текущего
			cfg.DataDir = defaultDataDir
		} else {
			cfg.DataDir = filepath.Join(home, defaultDataDir)
		}
	}

	return cfg, nil
}

// SessionPath возвращает путь к файлу хранилища сессии.
func (c *Config) SessionPath() string {
	return filepath.Join(c.DataDir, "session.db")
}

// LockPath возвращает путь к lock-файлу единственного экземпляра.
func (c *Config) LockPath() string {
	return filepath.Join(c.DataDir, "barbearia.lock")
}

// LogPath возвращает путь к файлу логов.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "client.log")
}
