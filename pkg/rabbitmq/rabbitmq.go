package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"
)

// ContactQueue receives one event per stored contact message.
const ContactQueue = "contact_messages"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *zap.Logger
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the contact queue.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := declareContactQueue(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("RabbitMQ client connected", zap.String("queue", ContactQueue))

	return &Client{
		conn:    conn,
		channel: ch,
		logger:  logger,
	}, nil
}

func declareContactQueue(ch *amqp.Channel) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		ContactQueue, // name
		true,         // durable
		false,        // delete when unused
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return q, fmt.Errorf("failed to declare %s: %w", ContactQueue, err)
	}
	return q, nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishContactReceived publishes a persistent JSON event to the contact queue.
func (c *Client) PublishContactReceived(event map[string]interface{}) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	err = c.channel.Publish(
		"",           // default exchange
		ContactQueue, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("Sent contact event", zap.ByteString("body", body))
	return nil
}

// ConsumeContactEvents delivers contact events to handler in a background
// goroutine. Messages are acked when handler returns nil and requeued otherwise.
func (c *Client) ConsumeContactEvents(handler func(event map[string]interface{}) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := declareContactQueue(c.channel)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		queue.Name, // queue
		"",         // consumer tag
		false,      // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			c.handleDelivery(msg, handler)
		}
	}()

	return nil
}

func (c *Client) handleDelivery(msg amqp.Delivery, handler func(map[string]interface{}) error) {
	event, err := DecodeEvent(msg.Body)
	if err != nil {
		// Malformed payloads would loop forever if requeued.
		c.logger.Warn("Dropping malformed contact event", zap.Uint64("tag", msg.DeliveryTag), zap.Error(err))
		if nackErr := msg.Nack(false, false); nackErr != nil {
			c.logger.Error("Error nacking message", zap.Uint64("tag", msg.DeliveryTag), zap.Error(nackErr))
		}
		return
	}

	if err := handler(event); err != nil {
		c.logger.Warn("Error processing contact event", zap.Uint64("tag", msg.DeliveryTag), zap.Error(err))
		if nackErr := msg.Nack(false, true); nackErr != nil {
			c.logger.Error("Error nacking message", zap.Uint64("tag", msg.DeliveryTag), zap.Error(nackErr))
		}
		return
	}

	if ackErr := msg.Ack(false); ackErr != nil {
		c.logger.Error("Error acking message", zap.Uint64("tag", msg.DeliveryTag), zap.Error(ackErr))
	}
}

// EncodeEvent marshals an event to its wire form.
func EncodeEvent(event map[string]interface{}) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contact event to JSON: %w", err)
	}
	return body, nil
}

// DecodeEvent parses an event received from the queue.
func DecodeEvent(body []byte) (map[string]interface{}, error) {
	var event map[string]interface{}
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contact event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("empty contact event")
	}
	return event, nil
}
