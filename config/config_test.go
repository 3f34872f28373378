package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueWarningLimitDefault(t *testing.T) {
	t.Setenv(QueueWarningLimitEnv, "")
	os.Unsetenv(QueueWarningLimitEnv)
	assert.Equal(t, DefaultQueueWarningLimit, QueueWarningLimit())
}

func TestQueueWarningLimitFromEnv(t *testing.T) {
	t.Setenv(QueueWarningLimitEnv, "2500")
	assert.Equal(t, 2500, QueueWarningLimit())
}

func TestQueueWarningLimitRejectsBadValues(t *testing.T) {
	t.Setenv(QueueWarningLimitEnv, "not-a-number")
	assert.Equal(t, DefaultQueueWarningLimit, QueueWarningLimit())

	t.Setenv(QueueWarningLimitEnv, "-5")
	assert.Equal(t, DefaultQueueWarningLimit, QueueWarningLimit())

	t.Setenv(QueueWarningLimitEnv, "0")
	assert.Equal(t, DefaultQueueWarningLimit, QueueWarningLimit())
}

func TestLoadEnv(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(QueueWarningLimitEnv+"=123\n"), 0o600))

	t.Setenv(QueueWarningLimitEnv, "")
	os.Unsetenv(QueueWarningLimitEnv)

	require.NoError(t, LoadEnv(envPath))
	assert.Equal(t, 123, QueueWarningLimit())

	assert.Error(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))
}
