package config

import (
	"github.com/dmitrymomot/fieldcheck/pkg/redis"
)

// Config is the fieldcheck command configuration.
type Config struct {
	LogLevel  string `env:"FIELDCHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FIELDCHECK_LOG_FORMAT" envDefault:"text"`
	// MessagesFile is a YAML or JSON file with global message templates,
	// loaded before the --messages flag.
	MessagesFile string `env:"FIELDCHECK_MESSAGES_FILE"`

	Redis redis.Config
}
