package config

const (
	// Queue related
	DefaultQueueWarningLimit = 100_000 // commands queued before the relay starts warning

	// Env variable names
	QueueWarningLimitEnv = "SYNCRELAY_QUEUE_WARNING_LIMIT"
)
