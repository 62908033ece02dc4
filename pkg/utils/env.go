package utils

import (
	"os"
	"strconv"
	"time"
)

// Env returns the value of an environment variable, or def when unset.
func Env(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

// EnvInt returns an environment variable parsed as a positive int, or def
// when unset, unparsable, or not positive.
func EnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// EnvDuration returns an environment variable parsed with time.ParseDuration,
// or def when unset, unparsable, or not positive.
func EnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
