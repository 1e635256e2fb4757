package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Bennnhere/LendIt-app/model"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("NOTIFIERS", "")

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "local_dev_secret", cfg.SessionSecret)
	require.Equal(t, 12*time.Hour, cfg.SessionTTL)
	require.Equal(t, "memory", cfg.Backend)
	require.Equal(t, []string{"log"}, cfg.Notify.Backends)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SESSION_BACKEND", "Redis")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("NOTIFIERS", "log, Telegram ,")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")

	cfg := Load()
	require.Equal(t, "s3cret", cfg.SessionSecret)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.Equal(t, "redis", cfg.Backend)
	require.Equal(t, 2, cfg.Redis.DB)
	require.Equal(t, []string{"log", "telegram"}, cfg.Notify.Backends)
	require.Equal(t, int64(-100123), cfg.Notify.TelegramChatID)
}

func TestLoad_ProdRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("SESSION_SECRET", "")
	require.Panics(t, func() { Load() })
}

func TestLoadCatalog_Default(t *testing.T) {
	items, err := LoadCatalog("")
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "Scientific Calculator", items[2].Name)
}

func TestLoadCatalog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
items:
  - id: 7
    name: Ruler
    owner: You
    price_per_hour: 5
    status: Busy
  - name: Stapler
    owner: Meera
    price_per_hour: 2
`), 0o600))

	items, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, int64(7), items[0].ID)
	require.Equal(t, model.ItemAvailable, items[0].Status)
	require.Equal(t, int64(8), items[1].ID)
}

func TestLoadCatalog_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - name: Free\n    price_per_hour: 0\n"), 0o600))

	_, err := LoadCatalog(path)
	require.Error(t, err)

	for _, price := range []string{"100001", "1e308", ".inf", ".nan"} {
		require.NoError(t, os.WriteFile(path, []byte("items:\n  - name: Gold Drafter\n    price_per_hour: "+price+"\n"), 0o600))
		_, err = LoadCatalog(path)
		require.Error(t, err, price)
	}

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
