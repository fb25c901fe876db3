package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBoardCacheConfig_DetailTTL(t *testing.T) {
	assert.Equal(t, DefaultDetailTTL, BoardCacheConfig{}.DetailTTL())
	assert.Equal(t, DefaultDetailTTL, BoardCacheConfig{DetailTTLSeconds: -5}.DetailTTL())
	assert.Equal(t, 90*time.Second, BoardCacheConfig{DetailTTLSeconds: 90}.DetailTTL())
}

func TestMySQLConfig_PoolSettings(t *testing.T) {
	cfg := MySQLConfig{
		SharedMaxIdleConns:    10,
		SharedMaxOpenConns:    50,
		SharedConnMaxLifetime: 3600,
	}
	idle, open, life := cfg.PoolSettings()
	assert.Equal(t, []int{10, 50, 3600}, []int{idle, open, life})

	override := 5
	cfg.Write.MaxIdleConns = &override
	idle, open, _ = cfg.PoolSettings()
	assert.Equal(t, 5, idle)
	assert.Equal(t, 50, open)
}

func TestCOSConfig_Enabled(t *testing.T) {
	assert.False(t, COSConfig{}.Enabled())
	assert.False(t, COSConfig{SecretID: "id"}.Enabled())
	assert.True(t, COSConfig{SecretID: "id", SecretKey: "key"}.Enabled())
}
