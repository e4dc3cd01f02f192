package infrastructure

import (
	"context"
	"elevatorops-console/models"
	"elevatorops-console/utils/logger"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Notifier announces lifecycle transitions to other systems
type Notifier interface {
	PublishStatusChange(ctx context.Context, event models.StatusEvent) error
	Close()
}

// Publisher is the minimal broker capability a notifier needs
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
	Disconnect()
}

// MQTTClient wraps a paho client
type MQTTClient struct {
	client  mqtt.Client
	timeout time.Duration
}

// NewMQTTClient connects to the configured broker
func NewMQTTClient(cfg *models.Config, log logger.Logger) (*MQTTClient, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.MQTTBroker)
	opts.SetClientID(cfg.MQTTClientID)
	if cfg.MQTTUsername != "" {
		opts.SetUsername(cfg.MQTTUsername)
	}
	if cfg.MQTTPassword != "" {
		opts.SetPassword(cfg.MQTTPassword)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Warnf("MQTT connection lost: %v", err)
	})
	opts.SetOnConnectHandler(func(_ mqtt.Client) {
		log.Infof("Connected to MQTT broker %s", cfg.MQTTBroker)
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return &MQTTClient{client: client, timeout: 5 * time.Second}, nil
}

// Publish sends payload and waits for the broker acknowledgement
func (c *MQTTClient) Publish(topic string, qos byte, retained bool, payload []byte) error {
	token := c.client.Publish(topic, qos, retained, payload)
	if !token.WaitTimeout(c.timeout) {
		return fmt.Errorf("timed out publishing to topic %s", topic)
	}
	if token.Error() != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, token.Error())
	}
	return nil
}

func (c *MQTTClient) Disconnect() {
	c.client.Disconnect(250)
}

// MQTTNotifier publishes status events as JSON to <prefix>/requests/<id>/status
type MQTTNotifier struct {
	publisher Publisher
	prefix    string
	logger    logger.Logger
}

func NewMQTTNotifier(publisher Publisher, prefix string, log logger.Logger) *MQTTNotifier {
	return &MQTTNotifier{
		publisher: publisher,
		prefix:    strings.Trim(prefix, "/"),
		logger:    log,
	}
}

// Topic returns the topic used for a request
func (n *MQTTNotifier) Topic(requestID models.ID) string {
	topic := "requests/" + requestID.String() + "/status"
	if n.prefix == "" {
		return topic
	}
	return n.prefix + "/" + topic
}

func (n *MQTTNotifier) PublishStatusChange(ctx context.Context, event models.StatusEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode status event: %w", err)
	}
	topic := n.Topic(event.RequestID)
	if err := n.publisher.Publish(topic, 1, false, payload); err != nil {
		return err
	}
	n.logger.Debugf("Published %s -> %s to %s", event.From, event.To, topic)
	return nil
}

func (n *MQTTNotifier) Close() {
	n.publisher.Disconnect()
}

// NopNotifier is used when no broker is configured
type NopNotifier struct{}

func (NopNotifier) PublishStatusChange(ctx context.Context, event models.StatusEvent) error {
	return nil
}

func (NopNotifier) Close() {}

// NewNotifier connects to MQTT when a broker is configured and falls back to a
// no-op notifier otherwise
func NewNotifier(cfg *models.Config, log logger.Logger) (Notifier, error) {
	if cfg.MQTTBroker == "" {
		log.Info("No MQTT broker configured, lifecycle notifications disabled")
		return NopNotifier{}, nil
	}
	client, err := NewMQTTClient(cfg, log)
	if err != nil {
		return nil, err
	}
	return NewMQTTNotifier(client, cfg.MQTTTopicPrefix, log), nil
}
