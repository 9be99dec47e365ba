package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"

	"cityreport-be/models"
)

const RoutingComplaintCreated = "complaint.created"

// ComplaintEvent is the message sent when a complaint enters the system
type ComplaintEvent struct {
	ID              string            `json:"id"`
	ReferenceNumber string            `json:"referenceNumber"`
	Title           string            `json:"title"`
	Category        models.CategoryID `json:"category"`
	Status          models.Status     `json:"status"`
	Coords          models.Coords     `json:"coords"`
	Address         string            `json:"address"`
	ReporterID      string            `json:"reporterId,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

func NewComplaintEvent(c models.Complaint, reporterID string) ComplaintEvent {
	return ComplaintEvent{
		ID:              c.ID,
		ReferenceNumber: c.ReferenceNumber,
		Title:           c.Title,
		Category:        c.Category,
		Status:          c.Status,
		Coords:          c.Coords,
		Address:         c.Address,
		ReporterID:      reporterID,
		CreatedAt:       c.CreatedAt,
	}
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
	Close() error
}

// NopPublisher drops every message
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }
func (NopPublisher) Close() error                                       { return nil }

// AMQPPublisher publishes JSON messages to a durable direct exchange
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewAMQPPublisher(amqpURL, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &AMQPPublisher{conn: conn, channel: channel, exchange: exchange}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message to JSON: %w", err)
	}

	err = p.channel.Publish(
		p.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
