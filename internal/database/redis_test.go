package database

import (
	"testing"

	"go-gin-concert-booking/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRedis(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mr := miniredis.RunT(t)

		rdb, err := InitRedis(&config.RedisConfig{Host: mr.Host(), Port: mr.Port()})
		require.NoError(t, err)
		defer rdb.Close()

		assert.Equal(t, mr.Addr(), rdb.Options().Addr)
	})

	t.Run("Failed - unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		host, port := mr.Host(), mr.Port()
		mr.Close()

		_, err := InitRedis(&config.RedisConfig{Host: host, Port: port})
		assert.ErrorContains(t, err, "failed to ping redis")
	})
}
