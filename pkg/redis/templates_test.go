package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/messages"
	"github.com/dmitrymomot/fieldcheck/pkg/redis"
)

func setup(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestTemplates(t *testing.T) {
	t.Run("save and load", func(t *testing.T) {
		_, client := setup(t)
		store := redis.NewTemplates(client, "")
		ctx := context.Background()

		assert.Equal(t, redis.DefaultTemplatesKey, store.Key())

		require.NoError(t, store.Save(ctx, map[string]string{
			"required": "{field} cannot be empty",
			"min":      "{field} needs at least $0",
		}))

		templates, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"required": "{field} cannot be empty",
			"min":      "{field} needs at least $0",
		}, templates)
	})

	t.Run("missing hash loads empty", func(t *testing.T) {
		_, client := setup(t)
		templates, err := redis.NewTemplates(client, "absent").Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, templates)
	})

	t.Run("delete and reset", func(t *testing.T) {
		mr, client := setup(t)
		store := redis.NewTemplates(client, "msgs")
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, map[string]string{"a": "A", "b": "B"}))
		require.NoError(t, store.Delete(ctx, "a", "unknown"))
		assert.Equal(t, "B", mr.HGet("msgs", "b"))
		assert.Empty(t, mr.HGet("msgs", "a"))

		require.NoError(t, store.Reset(ctx))
		assert.False(t, mr.Exists("msgs"))
	})

	t.Run("server down", func(t *testing.T) {
		mr, client := setup(t)
		mr.Close()

		_, err := redis.NewTemplates(client, "msgs").Load(context.Background())
		require.ErrorIs(t, err, redis.ErrFailedToLoadTemplates)

		err = redis.NewTemplates(client, "msgs").Save(context.Background(), map[string]string{"a": "A"})
		require.ErrorIs(t, err, redis.ErrFailedToSaveTemplates)
	})

	t.Run("acts as a message source", func(t *testing.T) {
		mr, client := setup(t)
		mr.HSet("msgs", "required", "{field} from redis")

		templates, err := messages.LoadAll(context.Background(),
			messages.MapSource{"required": "{field} from memory", "alpha": "letters"},
			redis.NewTemplates(client, "msgs"),
		)
		require.NoError(t, err)

		store := messages.NewStore(templates)
		msg, ok := store.Render("name", "required", nil)
		require.True(t, ok)
		assert.Equal(t, "name from redis", msg)
		assert.Equal(t, "letters", templates["alpha"])
	})
}

func TestConnect(t *testing.T) {
	t.Run("connects", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL:  "redis://" + mr.Addr() + "/0",
			RetryAttempts:  1,
			ConnectTimeout: time.Second,
		})
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Close() })

		require.NoError(t, redis.Healthcheck(client)(context.Background()))
	})

	t.Run("empty URL", func(t *testing.T) {
		_, err := redis.Connect(context.Background(), redis.Config{})
		assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
		assert.False(t, redis.Config{}.Enabled())
	})

	t.Run("invalid URL", func(t *testing.T) {
		_, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://nope"})
		assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
	})

	t.Run("server unavailable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL:  "redis://" + addr + "/0",
			RetryAttempts:  2,
			RetryInterval:  10 * time.Millisecond,
			ConnectTimeout: 2 * time.Second,
		})
		require.ErrorIs(t, err, redis.ErrRedisNotReady)
		assert.ErrorIs(t, err, redis.ErrHealthcheckFailed)
	})
}
