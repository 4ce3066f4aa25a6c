package mqtt

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/hmousaa/athan-agent/pkg/file"
	"github.com/rs/zerolog"
)

// Publisher is the narrow publish surface consumed by the services.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}

// Subscriber receives messages on a topic through a handler.
type Subscriber interface {
	Subscribe(topic string, qos byte, handler func(topic string, payload []byte)) error
}

// PubSub combines the publish and subscribe surfaces.
type PubSub interface {
	Publisher
	Subscriber
}

// Client wraps the paho MQTT client used as the notification-surface transport.
type Client struct {
	client     mqtt.Client
	fileClient file.FileOperations
	logger     zerolog.Logger
}

// NewClient creates an unconnected Client.
func NewClient(fileClient file.FileOperations, logger zerolog.Logger) *Client {
	return &Client{
		fileClient: fileClient,
		logger:     logger,
	}
}

// Connect establishes the broker connection. If caCertPath is non-empty the
// connection is made over TLS with the given CA certificate.
func (c *Client) Connect(broker, clientID, caCertPath string) error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)

	if caCertPath != "" {
		caCert, err := c.fileClient.ReadFileRaw(caCertPath)
		if err != nil {
			return fmt.Errorf("failed to read CA certificate: %w", err)
		}

		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return fmt.Errorf("failed to append CA certificate")
		}

		opts.SetTLSConfig(&tls.Config{RootCAs: caCertPool})
	}

	c.client = mqtt.NewClient(opts)

	token := c.client.Connect()
	if token.Wait() && token.Error() != nil {
		return token.Error()
	}

	c.logger.Info().Str("broker", broker).Str("client_id", clientID).Msg("Connected to MQTT broker")
	return nil
}

// Publish sends a message to the specified topic and waits for the broker ack.
func (c *Client) Publish(topic string, qos byte, retained bool, payload []byte) error {
	token := c.client.Publish(topic, qos, retained, payload)
	token.Wait()
	return token.Error()
}

// Subscribe subscribes to the specified topic with a message handler.
func (c *Client) Subscribe(topic string, qos byte, handler func(topic string, payload []byte)) error {
	token := c.client.Subscribe(topic, qos, func(_ mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	token.Wait()
	return token.Error()
}

// Disconnect gracefully disconnects the MQTT client.
func (c *Client) Disconnect(quiesce uint) {
	if c.client != nil {
		c.client.Disconnect(quiesce)
	}
}
