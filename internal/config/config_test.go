package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("API_URL", "https://api.example.com/v2")
	t.Setenv("ELECTION_ID", "bw-2025")
	t.Setenv("ELECTION_STAGE", "live")
	t.Setenv("MQTT_BROKER", "broker.local")
	t.Setenv("MQTT_PORT", "1883")
	t.Setenv("MQTT_TOPIC", "display/notify")
}

func TestLoad_AllRequiredSet(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v2", cfg.APIURL)
	assert.Equal(t, "bw-2025", cfg.ElectionID)
	assert.Equal(t, "live", cfg.ElectionStage)
	assert.Equal(t, "broker.local", cfg.MQTTBroker)
	assert.Equal(t, 1883, cfg.MQTTPort)
	assert.Equal(t, "display/notify", cfg.MQTTTopic)
	assert.Equal(t, 5*time.Minute, cfg.PollInterval)
	assert.InDelta(t, 5.0, cfg.Threshold, 0.001)
	assert.Equal(t, "Local", cfg.DisplayTZ)
}

func TestLoad_MissingRequired(t *testing.T) {
	vars := []string{"API_URL", "ELECTION_ID", "ELECTION_STAGE", "MQTT_BROKER", "MQTT_TOPIC"}
	for _, name := range vars {
		t.Run(name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(name, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestLoad_MissingPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MQTT_PORT", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MQTT_PORT")
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MQTT_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MQTT_PORT")
}

func TestLoad_InvalidPollInterval(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POLL_INTERVAL", "0s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POLL_INTERVAL")
}

func TestLoad_InvalidTimezone(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DISPLAY_TIMEZONE", "Not/AZone")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISPLAY_TIMEZONE")
}

func TestLocation_NamedZone(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DISPLAY_TIMEZONE", "Europe/Berlin")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", cfg.Location().String())
}
