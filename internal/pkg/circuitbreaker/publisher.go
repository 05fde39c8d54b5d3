package circuitbreaker

import (
	"encoding/json"
	"fmt"
)

// EventBus is the publishing side of the NATS client
type EventBus interface {
	Publish(subject string, data []byte) error
}

// Publisher guards an EventBus with a breaker
type Publisher struct {
	bus     EventBus
	breaker *Breaker
}

// NewPublisher wraps bus with breaker
func NewPublisher(bus EventBus, breaker *Breaker) *Publisher {
	return &Publisher{bus: bus, breaker: breaker}
}

// Publish sends raw data to subject
func (p *Publisher) Publish(subject string, data []byte) error {
	return p.breaker.Do(func() error {
		return p.bus.Publish(subject, data)
	})
}

// PublishJSON marshals v and sends it to subject
func (p *Publisher) PublishJSON(subject string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", subject, err)
	}
	return p.Publish(subject, data)
}
