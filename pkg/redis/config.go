package redis

import "time"

// Config describes the redis server holding message templates.
// An empty ConnectionURL disables redis.
type Config struct {
	// ConnectionURL in the form "redis://:password@localhost:6379/0".
	ConnectionURL string `env:"FIELDCHECK_REDIS_URL"`
	// TemplatesKey is the hash holding rule -> template.
	TemplatesKey   string        `env:"FIELDCHECK_REDIS_KEY" envDefault:"fieldcheck:messages"`
	RetryAttempts  int           `env:"FIELDCHECK_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"FIELDCHECK_REDIS_RETRY_INTERVAL" envDefault:"1s"`
	ConnectTimeout time.Duration `env:"FIELDCHECK_REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
