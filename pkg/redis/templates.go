package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultTemplatesKey is the hash used when no key is given.
const DefaultTemplatesKey = "fieldcheck:messages"

// Templates keeps message templates in a redis hash, one field per rule.
// It satisfies messages.Source, so templates shared through redis can be
// merged with file and in-memory sources.
type Templates struct {
	db  redis.UniversalClient
	key string
}

// NewTemplates returns a template store on hash key. An empty key falls back
// to DefaultTemplatesKey.
func NewTemplates(client redis.UniversalClient, key string) *Templates {
	if key == "" {
		key = DefaultTemplatesKey
	}
	return &Templates{db: client, key: key}
}

// Key returns the hash name.
func (t *Templates) Key() string {
	return t.key
}

// Load returns every template in the hash. A missing hash yields an empty map.
func (t *Templates) Load(ctx context.Context) (map[string]string, error) {
	templates, err := t.db.HGetAll(ctx, t.key).Result()
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadTemplates, err)
	}
	return templates, nil
}

// Save writes templates into the hash, replacing rules that already exist.
func (t *Templates) Save(ctx context.Context, templates map[string]string) error {
	if len(templates) == 0 {
		return nil
	}
	if err := t.db.HSet(ctx, t.key, templates).Err(); err != nil {
		return errors.Join(ErrFailedToSaveTemplates, err)
	}
	return nil
}

// Delete removes the templates of the given rules. Unknown rules are ignored.
func (t *Templates) Delete(ctx context.Context, rules ...string) error {
	if len(rules) == 0 {
		return nil
	}
	return t.db.HDel(ctx, t.key, rules...).Err()
}

// Reset drops the whole hash.
func (t *Templates) Reset(ctx context.Context) error {
	return t.db.Del(ctx, t.key).Err()
}
