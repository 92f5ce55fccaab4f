// This file contains environment variable utilities for configuration
// override.

package config

import (
	"os"
	"strconv"
	"strings"
)

// getEnvString returns the value of the environment variable with the
// given key (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as int, or the default value if
// not set or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as bool, or the default value if
// not set. Accepts "true", "1", "yes" as true; "false", "0", "no" as
// false (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}
