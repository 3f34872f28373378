package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv loads relay settings from a .env file into the process environment.
// Variables already set in the environment are not overwritten.
func LoadEnv(envPath string) error {
	return godotenv.Load(envPath)
}

// QueueWarningLimit returns the queue depth at which the relay logs a
// warning. Reads SYNCRELAY_QUEUE_WARNING_LIMIT from the environment; falls
// back to DefaultQueueWarningLimit when unset, malformed, or non-positive.
func QueueWarningLimit() int {
	raw := os.Getenv(QueueWarningLimitEnv)
	if raw == "" {
		return DefaultQueueWarningLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return DefaultQueueWarningLimit
	}
	return limit
}
