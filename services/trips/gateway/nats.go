package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/carpool/internal/pkg/constants"
	"github.com/piresc/carpool/internal/pkg/models"
	nrpkg "github.com/piresc/carpool/internal/pkg/newrelic"
)

// JSONPublisher publishes JSON encoded payloads
type JSONPublisher interface {
	PublishJSON(subject string, v interface{}) error
}

// TripGW publishes order and trip lifecycle events to NATS
type TripGW struct {
	publisher JSONPublisher
}

// NewTripGW creates a new trip gateway
func NewTripGW(publisher JSONPublisher) *TripGW {
	return &TripGW{publisher: publisher}
}

// PublishOrderIssued announces a freshly matched request and its order
func (g *TripGW) PublishOrderIssued(ctx context.Context, event models.OrderIssuedEvent) error {
	return g.publish(ctx, constants.SubjectOrderIssued, event)
}

// PublishRequestCancelled announces a passenger cancellation
func (g *TripGW) PublishRequestCancelled(ctx context.Context, event models.TripEvent) error {
	return g.publish(ctx, constants.SubjectTripRequestCancelled, event)
}

// PublishTripStarted announces a pickup
func (g *TripGW) PublishTripStarted(ctx context.Context, event models.TripEvent) error {
	return g.publish(ctx, constants.SubjectTripStarted, event)
}

// PublishTripCompleted announces a drop-off
func (g *TripGW) PublishTripCompleted(ctx context.Context, event models.TripEvent) error {
	return g.publish(ctx, constants.SubjectTripCompleted, event)
}

func (g *TripGW) publish(ctx context.Context, subject string, event interface{}) error {
	defer nrpkg.StartMessageSegment(ctx, subject)()

	if err := g.publisher.PublishJSON(subject, event); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", subject, err)
	}
	return nil
}
