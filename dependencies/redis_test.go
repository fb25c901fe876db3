package dependencies

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/Xushengqwer/board_service/config"
)

func TestNewRedisOptions(t *testing.T) {
	opts := NewRedisOptions(&appConfig.RedisConfig{
		Address:     "127.0.0.1:6379",
		DB:          2,
		PoolSize:    20,
		DialTimeout: 3,
		ReadTimeout: 1,
	})
	assert.Equal(t, "127.0.0.1:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 20, opts.PoolSize)
	assert.Equal(t, 3*time.Second, opts.DialTimeout)
	assert.Equal(t, time.Second, opts.ReadTimeout)
	assert.Zero(t, opts.WriteTimeout)
}

func TestNewRedisOptions_ConnectsToServer(t *testing.T) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(NewRedisOptions(&appConfig.RedisConfig{Address: mr.Addr()}))
	defer client.Close()

	require.NoError(t, client.Ping(context.Background()).Err())
}
