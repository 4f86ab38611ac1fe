package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string
	DBPath       string // "memory" — документы в памяти процесса
	PolicyFile   string // YAML с порогами, пусто — значения по умолчанию
	ScoreWorkers int
}

func Load() Config {
	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         getint("PORT", 8082),
		AllowOrigins: strings.Split(getenv("ALLOW_ORIGINS", "*"), ","),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		MaxUploadMB:  getint("MAX_UPLOAD_MB", 64),
		LogFile:      getenv("LOG_FILE", "logs/dedup-service.log"),
		DBPath:       getenv("DB_PATH", "data/documents.db"),
		PolicyFile:   getenv("POLICY_FILE", ""),
		ScoreWorkers: getint("SCORE_WORKERS", runtime.NumCPU()),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	n, err := strconv.Atoi(getenv(k, ""))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
