package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

// Config returns the value of an environment variable. The .env file in the
// working directory is loaded on first use; variables already set in the
// process environment win over the file.
func Config(key string, defaultValue ...string) string {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
