// Package envvar reads typed configuration values from the environment.
package envvar

import (
	"log/slog"
	"os"
	"strconv"
)

// GetFloat64 returns the float64 value of the environment variable varName, if the env var is empty or not a valid
// float it will return 0, false.
func GetFloat64(varName string) (float64, bool) {
	env, ok := os.LookupEnv(varName)
	if !ok {
		return 0, false
	}

	val, err := strconv.ParseFloat(env, 64)
	if err != nil {
		return 0, false
	}

	return val, true
}

// GetLogLevel returns the log level named by the environment variable varName, if the env var is empty or not a valid
// level it will return slog.LevelInfo, false.
func GetLogLevel(varName string) (slog.Level, bool) {
	env, ok := os.LookupEnv(varName)
	if !ok {
		return slog.LevelInfo, false
	}

	var level slog.Level

	if err := level.UnmarshalText([]byte(env)); err != nil {
		return slog.LevelInfo, false
	}

	return level, true
}
