package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_SecretRequired(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrSecretRequired)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	require.Equal(t, "membership-events", cfg.Kafka.Topic)
	require.Empty(t, cfg.Kafka.Brokers)
}

func TestLoad_KafkaBrokers(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")
	t.Setenv("KAFKA_TOPIC", "events")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, "events", cfg.Kafka.Topic)
}
