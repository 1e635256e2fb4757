package config

import "time"

type App struct {
	Port          string        `env:"APP_PORT" default:"8080"`
	Env           string        `env:"APP_ENV" default:"dev"`
	LogLevel      string        `env:"LOG_LEVEL" default:"info"`
	Currency      string        `env:"CURRENCY" default:"₹"`
	SessionSecret string        `env:"SESSION_SECRET,required"`
	SessionTTL    time.Duration `env:"SESSION_TTL" default:"12h"`
	Backend       string        `env:"SESSION_BACKEND" default:"memory"`
	SeedPath      string        `env:"SEED_PATH"`
	Redis         Redis
	Notify        Notify
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" default:"0"`
}

type Notify struct {
	Backends       []string `env:"NOTIFIERS" default:"log"`
	TelegramToken  string   `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64    `env:"TELEGRAM_CHAT_ID"`
	WebhookURL     string   `env:"BROADCAST_WEBHOOK_URL"`
}

func (a App) IsDev() bool { return a.Env == "dev" || a.Env == "test" }
