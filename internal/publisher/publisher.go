package publisher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/jgoulah/refractocalc/internal/config"
	"github.com/jgoulah/refractocalc/pkg/models"
)

// Publisher pushes corrected readings to Home Assistant and/or an MQTT
// broker for fermentation dashboards
type Publisher struct {
	client      mqtt.Client
	topicPrefix string
	haConfig    config.HAConfig
	httpClient  *http.Client
}

// New creates a new publisher (supports both MQTT and HA HTTP API)
func New(mqttCfg config.MQTTConfig, topicPrefix string, haCfg config.HAConfig) (*Publisher, error) {
	// Validate HA config if enabled
	if haCfg.Enabled {
		if haCfg.URL == "" {
			return nil, fmt.Errorf("Home Assistant URL is required when enabled")
		}
		if haCfg.Token == "" {
			return nil, fmt.Errorf("Home Assistant token is required when enabled")
		}
		if haCfg.EntityID == "" {
			return nil, fmt.Errorf("Home Assistant entity_id is required when enabled")
		}
	}

	var client mqtt.Client

	if mqttCfg.Enabled {
		if mqttCfg.Broker == "" {
			return nil, fmt.Errorf("MQTT broker address is required when enabled")
		}

		// Configure MQTT client options
		opts := mqtt.NewClientOptions()
		opts.AddBroker(fmt.Sprintf("tcp://%s", mqttCfg.Broker))
		opts.SetClientID("refractocalc")
		opts.SetAutoReconnect(true)
		opts.SetConnectRetry(true)
		opts.SetConnectTimeout(10 * time.Second)

		if mqttCfg.Username != "" {
			opts.SetUsername(mqttCfg.Username)
		}
		if mqttCfg.Password != "" {
			opts.SetPassword(mqttCfg.Password)
		}

		// Create and connect client
		client = mqtt.NewClient(opts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			return nil, fmt.Errorf("connecting to MQTT broker: %w", token.Error())
		}
	}

	return &Publisher{
		client:      client,
		topicPrefix: topicPrefix,
		haConfig:    haCfg,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// HAPayload matches the Home Assistant backfill service call data
type HAPayload struct {
	EntityID    string `json:"entity_id"`
	State       string `json:"state"`
	LastChanged string `json:"last_changed"`
	LastUpdated string `json:"last_updated"`
}

// mqttPayload is the JSON body published per reading
type mqttPayload struct {
	Batch           string  `json:"batch"`
	AdjustedFinalSG float64 `json:"adjusted_final_sg"`
	ABV             float64 `json:"abv"`
	Attenuation     float64 `json:"attenuation"`
	Timestamp       string  `json:"timestamp"`
}

// Publish sends a corrected reading to every enabled transport. The state
// sent to Home Assistant is the adjusted final gravity, timestamped with
// the reading's creation time so backfilled history lands correctly.
func (p *Publisher) Publish(reading models.Reading) error {
	if !p.haConfig.Enabled && p.client == nil {
		return fmt.Errorf("publishing is not enabled in config")
	}

	if p.client != nil {
		if err := p.publishMQTT(reading); err != nil {
			return err
		}
	}

	if p.haConfig.Enabled {
		if err := p.publishHA(reading); err != nil {
			return err
		}
	}

	return nil
}

// publishMQTT publishes the reading as retained JSON under the batch topic
func (p *Publisher) publishMQTT(reading models.Reading) error {
	payload := mqttPayload{
		Batch:           reading.Batch,
		AdjustedFinalSG: reading.AdjustedFinalSG,
		ABV:             reading.ABV,
		Attenuation:     reading.Attenuation,
		Timestamp:       reading.CreatedAt.Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding MQTT payload: %w", err)
	}

	topic := fmt.Sprintf("%s/%s", p.topicPrefix, reading.Batch)
	if token := p.client.Publish(topic, 1, true, body); token.Wait() && token.Error() != nil {
		return fmt.Errorf("publishing to %s: %w", topic, token.Error())
	}

	return nil
}

// publishHA sends the reading to Home Assistant via the AppDaemon backfill
// HTTP API
func (p *Publisher) publishHA(reading models.Reading) error {
	apiURL := fmt.Sprintf("%s/api/appdaemon/backfill_state", p.haConfig.URL)

	timestamp := reading.CreatedAt.Format(time.RFC3339)

	payload := HAPayload{
		EntityID:    p.haConfig.EntityID,
		State:       fmt.Sprintf("%.3f", reading.AdjustedFinalSG),
		LastChanged: timestamp,
		LastUpdated: timestamp,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+p.haConfig.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read error response body for debugging
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP error: status %d, response: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// Close disconnects from the MQTT broker
func (p *Publisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
