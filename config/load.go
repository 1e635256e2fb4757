package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the environment, after merging an optional .env file from the
// working directory. Variables already set in the environment win.
func Load() App {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("dotenv load failed", "err", err)
	}

	cfg := App{
		Port:     getenv("APP_PORT", "8080"),
		Env:      getenv("APP_ENV", "dev"),
		LogLevel: getenv("LOG_LEVEL", "info"),
		Currency: getenv("CURRENCY", "₹"),
		Backend:  strings.ToLower(getenv("SESSION_BACKEND", "memory")),
		SeedPath: os.Getenv("SEED_PATH"),
		Redis: Redis{
			Addr:     getenv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getint("REDIS_DB", 0),
		},
		Notify: Notify{
			Backends:       splitList(getenv("NOTIFIERS", "log")),
			TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
			TelegramChatID: int64(getint("TELEGRAM_CHAT_ID", 0)),
			WebhookURL:     os.Getenv("BROADCAST_WEBHOOK_URL"),
		},
	}
	cfg.SessionTTL = getduration("SESSION_TTL", 12*time.Hour)

	if cfg.IsDev() {
		cfg.SessionSecret = getenv("SESSION_SECRET", "local_dev_secret")
	} else {
		cfg.SessionSecret = must("SESSION_SECRET")
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid int env, using default", "key", k, "value", v, "default", def)
		return def
	}
	return n
}

func getduration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env, using default", "key", k, "value", v, "default", def)
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
