package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run(`defaults check`, func(t *testing.T) {
		conf, err := Load()
		require.Nil(t, err)
		require.Equal(t, 8080, conf.App.Port)
		require.Equal(t, "http://localhost:8001/api", conf.Backend.Host)
		require.Equal(t, time.Duration(0), conf.Backend.Timeout)
		require.False(t, conf.AuditEnabled())
		require.False(t, conf.S3Enabled())
	})

	t.Run(`env override check`, func(t *testing.T) {
		t.Setenv("PLACEMENT_API_URL", "https://placement.example.com/api")
		t.Setenv("AUDIT_ENABLED", "true")
		t.Setenv("S3_ENDPOINT", "minio:9000")
		conf, err := Load()
		require.Nil(t, err)
		require.Equal(t, "https://placement.example.com/api", conf.Backend.Host)
		require.True(t, conf.AuditEnabled())
		require.True(t, conf.S3Enabled())
	})

	t.Run(`invalid backend host check`, func(t *testing.T) {
		t.Setenv("PLACEMENT_API_URL", "not a url")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run(`invalid log level check`, func(t *testing.T) {
		t.Setenv("APP_LOG_LEVEL", "verbose")
		_, err := Load()
		require.Error(t, err)
	})
}
