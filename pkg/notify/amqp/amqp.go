// Package amqp publishes feed events to a RabbitMQ topic exchange. Events for
// a source are routed with the key "feed.<source>".
package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"careerguide/pkg/domain"
	"careerguide/pkg/logger"
	"careerguide/pkg/notify"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// Options configures the publisher.
type Options struct {
	URL      string
	Exchange string
}

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("amqp publisher closed")

// Publisher implements notify.Publisher over a single AMQP connection. A
// connection dropped by the broker is redialed on the next Publish.
type Publisher struct {
	url      string
	exchange string

	mu     sync.Mutex
	conn   *amqp.Connection
	closed bool
}

var _ notify.Publisher = (*Publisher)(nil)

// New dials the broker and declares the exchange.
func New(opts Options) (*Publisher, error) {
	p := &Publisher{url: opts.URL, exchange: opts.Exchange}
	if err := p.dial(); err != nil {
		return nil, err
	}

	return p, nil
}

// dial replaces the connection and declares the exchange on it. The caller
// holds mu, or owns p exclusively.
func (p *Publisher) dial() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("could not dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return fmt.Errorf("could not open amqp channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // kind
		true,       // durable
		false,      // auto-delete
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	); err != nil {
		_ = conn.Close()

		return fmt.Errorf("could not declare exchange %s: %w", p.exchange, err)
	}

	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn = conn

	return nil
}

// RoutingKey returns the key events of source are published with.
func RoutingKey(source string) string {
	return "feed." + source
}

func (p *Publisher) publish(routingKey string, msg amqp.Publishing) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("could not open amqp channel: %w", err)
	}
	defer ch.Close()

	if err := ch.Publish(
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		msg,
	); err != nil {
		return fmt.Errorf("could not publish feed event: %w", err)
	}

	return nil
}

// Publish sends event to the exchange. When the connection turns out to be
// closed it is redialed and the publish is tried once more.
func (p *Publisher) Publish(ctx context.Context, event domain.FeedEvent) error {
	if err := ctx.Err(); err != nil {
		return err //nolint: wrapcheck
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal feed event: %w", err)
	}
	msg := amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   event.At,
		Body:        body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	if p.conn.IsClosed() {
		logger.Warn(ctx, "amqp connection lost, redialing")
		if err := p.dial(); err != nil {
			return err
		}
	}

	err = p.publish(RoutingKey(event.Source), msg)
	if !errors.Is(err, amqp.ErrClosed) {
		return err
	}

	logger.Warn(ctx, "amqp connection closed while publishing, redialing", zap.Error(err))
	if err := p.dial(); err != nil {
		return err
	}

	return p.publish(RoutingKey(event.Source), msg)
}

// Close closes the connection. Publish fails with ErrPublisherClosed
// afterwards.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.conn.IsClosed() {
		return nil
	}

	return p.conn.Close() //nolint: wrapcheck
}
