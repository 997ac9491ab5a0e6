// Package config loads configuration structs from environment variables with
// github.com/caarlos0/env, after reading an optional .env file through
// github.com/joho/godotenv.
//
// Parsed configs are cached per type, so Load is cheap to call from anywhere.
// Tests that change the environment call ForceReload or ResetCache.
//
// Config holds the settings of the fieldcheck command:
//
//	FIELDCHECK_LOG_LEVEL       debug, info, warn or error (default info)
//	FIELDCHECK_LOG_FORMAT      text or json (default text)
//	FIELDCHECK_MESSAGES_FILE   YAML/JSON file with message templates
//	FIELDCHECK_REDIS_URL       redis holding shared message templates
//	FIELDCHECK_REDIS_KEY       hash name (default fieldcheck:messages)
package config
