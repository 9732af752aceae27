package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "pixgram", cfg.Database.DatabaseName)
	assert.Equal(t, 1080, cfg.Media.ImageSize)
	assert.Equal(t, 320, cfg.Media.ThumbnailSize)
	assert.Equal(t, int64(10<<20), cfg.Media.MaxUploadBytes)
	assert.Equal(t, "images", cfg.MongoDB.Bucket)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_MAX_OPEN_CONNS", "5")
	t.Setenv("MEDIA_IMAGE_SIZE", "640")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5, cfg.Database.MaxOpenConns)
	assert.Equal(t, 640, cfg.Media.ImageSize)
}

func TestLoadIgnoresMalformedInts(t *testing.T) {
	t.Setenv("MYSQL_MAX_OPEN_CONNS", "lots")

	cfg := Load()
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
}

func TestDSN(t *testing.T) {
	t.Setenv("MYSQL_USER", "app")
	t.Setenv("MYSQL_PASSWORD", "pw")
	t.Setenv("MYSQL_HOST", "db")
	t.Setenv("MYSQL_PORT", "3307")
	t.Setenv("MYSQL_DATABASE", "social")

	cfg := Load()
	assert.Equal(t, "app:pw@tcp(db:3307)/social?charset=utf8mb4&parseTime=True&loc=Local", cfg.DSN())
}
