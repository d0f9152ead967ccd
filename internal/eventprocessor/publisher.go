// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package eventprocessor

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/mealmatch/internal/logging"
	"github.com/tomtom215/mealmatch/internal/metrics"
)

// Publisher wraps a Watermill publisher with a circuit breaker.
type Publisher struct {
	publisher      message.Publisher
	circuitBreaker *gobreaker.CircuitBreaker[interface{}]
	mu             sync.RWMutex
	closed         bool
}

// NewPublisher wraps pub. A nil breaker publishes without protection.
func NewPublisher(pub message.Publisher, cb *gobreaker.CircuitBreaker[interface{}]) (*Publisher, error) {
	if pub == nil {
		return nil, ErrNilPublisher
	}
	return &Publisher{publisher: pub, circuitBreaker: cb}, nil
}

// Publish sends msg to topic through the circuit breaker. An open breaker
// returns gobreaker.ErrOpenState without touching the backend.
func (p *Publisher) Publish(ctx context.Context, topic string, msg *message.Message) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	msg.SetContext(ctx)

	var err error
	if p.circuitBreaker != nil {
		_, err = p.circuitBreaker.Execute(func() (interface{}, error) {
			return nil, p.publisher.Publish(topic, msg)
		})
	} else {
		err = p.publisher.Publish(topic, msg)
	}

	metrics.RecordEventPublished(topic, err)
	return err
}

// PublishRating serializes and publishes a rating event. The correlation id
// of ctx is copied into the event and the message metadata.
func (p *Publisher) PublishRating(ctx context.Context, event *RatingEvent) error {
	if event.CorrelationID == "" {
		event.CorrelationID = logging.CorrelationIDFromContext(ctx)
	}

	data, err := SerializeEvent(event)
	if err != nil {
		return fmt.Errorf("serialize event: %w", err)
	}

	msg := message.NewMessage(event.EventID, data)
	msg.Metadata.Set("user_id", event.UserID)
	msg.Metadata.Set("recipe_id", fmt.Sprintf("%d", event.RecipeID))
	if event.CorrelationID != "" {
		msg.Metadata.Set("correlation_id", event.CorrelationID)
	}

	if err := p.Publish(ctx, event.Topic(), msg); err != nil {
		return fmt.Errorf("publish %s: %w", event.Topic(), err)
	}
	return nil
}

// State reports the breaker state, or "disabled" without a breaker.
func (p *Publisher) State() string {
	if p.circuitBreaker == nil {
		return "disabled"
	}
	return CircuitBreakerState(p.circuitBreaker)
}

// Close stops accepting events. The underlying publisher is owned by the Bus.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}
