package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsEmptyConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := &Config{
		DefaultUnit:  "brix",
		DefaultBatch: "saison-2026",
		HomeAssistant: HAConfig{
			Enabled:  true,
			URL:      "http://ha.local:5050",
			Token:    "token",
			EntityID: "sensor.fermenter_gravity",
		},
		MQTT: MQTTConfig{
			Enabled:     true,
			Broker:      "broker.local:1883",
			TopicPrefix: "brewery",
		},
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_unit: [broken"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestGetters_Defaults(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "sg", cfg.GetDefaultUnit())
	assert.Equal(t, "default", cfg.GetDefaultBatch())
	assert.Equal(t, "fermentation", cfg.GetTopicPrefix())
}

func TestGetters_Configured(t *testing.T) {
	cfg := &Config{
		DefaultUnit:  "brix",
		DefaultBatch: "ipa-7",
		MQTT:         MQTTConfig{TopicPrefix: "brewery"},
	}
	assert.Equal(t, "brix", cfg.GetDefaultUnit())
	assert.Equal(t, "ipa-7", cfg.GetDefaultBatch())
	assert.Equal(t, "brewery", cfg.GetTopicPrefix())
}
