// Package mqtt delivers display packets to the pixel clock over MQTT.
//
// Each publish opens its own connection, sends exactly one message and
// disconnects, so no connection outlives a poll cycle and nothing leaks on
// the error paths.
package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Kolpa/ulanzi-election/internal/domain"
)

const (
	connectTimeout = 10 * time.Second
	// Grace period for the broker to receive in-flight messages on disconnect.
	disconnectQuiesce = 250 * time.Millisecond
	publishQoS        = 1
)

// Publisher sends packets to one broker and topic.
type Publisher struct {
	brokerURL string
	topic     string
	clientID  string
}

func NewPublisher(broker string, port int, topic string) *Publisher {
	return &Publisher{
		brokerURL: fmt.Sprintf("tcp://%s:%d", broker, port),
		topic:     topic,
		clientID:  "ulanzi-election-display",
	}
}

// Publish connects to the broker, sends the packet as JSON and disconnects.
func (p *Publisher) Publish(ctx context.Context, packet domain.Packet) error {
	payload, err := json.Marshal(packet)
	if err != nil {
		return fmt.Errorf("marshal packet: %w", err)
	}

	opts := pahomqtt.NewClientOptions().
		AddBroker(p.brokerURL).
		SetClientID(p.clientID).
		SetConnectTimeout(connectTimeout).
		SetAutoReconnect(false)

	client := pahomqtt.NewClient(opts)
	if err := waitToken(ctx, client.Connect()); err != nil {
		return fmt.Errorf("connect to broker %s: %w", p.brokerURL, err)
	}
	defer client.Disconnect(uint(disconnectQuiesce.Milliseconds()))

	if err := waitToken(ctx, client.Publish(p.topic, publishQoS, false, payload)); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}
	return nil
}

func waitToken(ctx context.Context, token pahomqtt.Token) error {
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}
