package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)

	assert.Equal(t, "127.0.0.1:8080", cfg.App.Addr())
	assert.Equal(t, StorageDriverFile, cfg.Storage.Driver)
	assert.Equal(t, "./data", cfg.Storage.Path)
	assert.Equal(t, "none", cfg.Printer.Type)
	assert.Equal(t, 32, cfg.Printer.Width)
	assert.Equal(t, 10, cfg.Report.LowStockThreshold)
	assert.Equal(t, time.Minute, cfg.RateLimit.Duration)
	assert.Equal(t, []string{"http://localhost:8081"}, cfg.CORS.AllowedOrigins)
	require.NoError(t, cfg.Validate())
}

func TestOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("STORAGE_DRIVER", "Postgres")
	v.Set("CORS_ALLOWED_ORIGINS", "http://a.local, http://b.local,")
	v.Set("PRINTER_TYPE", "network")
	v.Set("PRINTER_ADDRESS", "192.168.1.50:9100")
	cfg := fromViper(v)

	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORS.AllowedOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)
	cfg.Storage.Driver = "redis"
	assert.Error(t, cfg.Validate())

	cfg = fromViper(v)
	cfg.Printer.Type = "network"
	assert.Error(t, cfg.Validate())

	cfg = fromViper(v)
	cfg.Report.LowStockThreshold = -1
	assert.Error(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{Host: "h", Port: "5432", Name: "pos", User: "u", Password: "p", SSLMode: "disable", Timezone: "UTC"}
	assert.Equal(t, "host=h user=u password=p dbname=pos port=5432 sslmode=disable TimeZone=UTC", db.DSN())
}
