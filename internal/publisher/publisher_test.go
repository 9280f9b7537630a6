package publisher

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/refractocalc/internal/config"
	"github.com/jgoulah/refractocalc/pkg/models"
)

func testReading() models.Reading {
	return models.Reading{
		ID:              1,
		UUID:            "3b6e1f2a-0000-0000-0000-000000000000",
		Batch:           "ipa-7",
		Unit:            "sg",
		OriginalSG:      1.067,
		FinalSG:         1.033,
		AdjustedFinalSG: 1.015,
		ABV:             6.83,
		Attenuation:     77.61,
		Calories:        226.72,
		CreatedAt:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNew_HAConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		ha   config.HAConfig
	}{
		{"missing url", config.HAConfig{Enabled: true, Token: "t", EntityID: "sensor.x"}},
		{"missing token", config.HAConfig{Enabled: true, URL: "http://ha.local", EntityID: "sensor.x"}},
		{"missing entity", config.HAConfig{Enabled: true, URL: "http://ha.local", Token: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(config.MQTTConfig{}, "fermentation", tt.ha)
			assert.Error(t, err)
		})
	}
}

func TestNew_MQTTRequiresBroker(t *testing.T) {
	_, err := New(config.MQTTConfig{Enabled: true}, "fermentation", config.HAConfig{})
	assert.Error(t, err)
}

func TestPublish_NothingEnabled(t *testing.T) {
	pub, err := New(config.MQTTConfig{}, "fermentation", config.HAConfig{})
	require.NoError(t, err)
	defer pub.Close()

	assert.Error(t, pub.Publish(testReading()))
}

func TestPublish_HomeAssistant(t *testing.T) {
	var got HAPayload
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appdaemon/backfill_state", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	pub, err := New(config.MQTTConfig{}, "fermentation", config.HAConfig{
		Enabled:  true,
		URL:      srv.URL,
		Token:    "secret",
		EntityID: "sensor.fermenter_gravity",
	})
	require.NoError(t, err)
	defer pub.Close()

	require.NoError(t, pub.Publish(testReading()))

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "sensor.fermenter_gravity", got.EntityID)
	assert.Equal(t, "1.015", got.State)
	assert.Equal(t, "2026-08-01T12:00:00Z", got.LastChanged)
	assert.Equal(t, got.LastChanged, got.LastUpdated)
}

func TestPublish_HomeAssistantHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backfill disabled", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	pub, err := New(config.MQTTConfig{}, "fermentation", config.HAConfig{
		Enabled:  true,
		URL:      srv.URL,
		Token:    "secret",
		EntityID: "sensor.fermenter_gravity",
	})
	require.NoError(t, err)
	defer pub.Close()

	err = pub.Publish(testReading())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
