// Package queue hands batch commands to the batch workers.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher publishes batch commands to a durable AMQP queue.
type Publisher struct {
	conn      *amqp.Connection
	ch        channel
	queueName string
	log       *slog.Logger

	// amqp channels are not safe for concurrent publishing.
	mu sync.Mutex
}

// NewPublisher dials the broker and declares the command queue.
func NewPublisher(url, queueName string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("queue: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("queue: open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("queue: declare %s: %w", queueName, err)
	}

	p := newPublisher(ch, queueName, logger)
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, queueName string, logger *slog.Logger) *Publisher {
	return &Publisher{
		ch:        ch,
		queueName: queueName,
		log:       logger.With("component", "queue"),
	}
}

// Dispatch publishes cmd as a persistent JSON message.
func (p *Publisher) Dispatch(ctx context.Context, cmd domain.BatchCommand) error {
	body, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("queue: marshal command: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    cmd.TaskID.String(),
		Type:         string(cmd.Type),
		Timestamp:    cmd.IssuedAt,
		Body:         body,
	}

	p.mu.Lock()
	err = p.ch.PublishWithContext(ctx, "", p.queueName, false, false, msg)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("queue: publish %s %s: %w", cmd.Type, cmd.TaskID, err)
	}

	p.log.DebugContext(ctx, "command published",
		slog.String("type", string(cmd.Type)),
		slog.String("task_id", cmd.TaskID.String()))
	return nil
}

// Ping reports an error once the broker connection is gone.
func (p *Publisher) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.conn != nil && p.conn.IsClosed() {
		return errors.New("queue: connection closed")
	}
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
