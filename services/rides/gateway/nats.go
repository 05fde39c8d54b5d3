package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/carpool/internal/pkg/constants"
	"github.com/piresc/carpool/internal/pkg/models"
	nrpkg "github.com/piresc/carpool/internal/pkg/newrelic"
)

// NATSPublisher interface for publishing messages
type NATSPublisher interface {
	Publish(subject string, data []byte) error
}

// RideGW publishes ride ledger events to NATS
type RideGW struct {
	publisher NATSPublisher
}

// NewRideGW creates a new ride gateway
func NewRideGW(publisher NATSPublisher) *RideGW {
	return &RideGW{publisher: publisher}
}

// PublishRideFull announces that the last seat of a ride was taken
func (g *RideGW) PublishRideFull(ctx context.Context, event models.RideEvent) error {
	return g.publish(ctx, constants.SubjectRideFull, event)
}

// PublishRideCancelled announces that a driver withdrew a ride
func (g *RideGW) PublishRideCancelled(ctx context.Context, event models.RideEvent) error {
	return g.publish(ctx, constants.SubjectRideCancelled, event)
}

// PublishRideCompleted announces that a ride is over
func (g *RideGW) PublishRideCompleted(ctx context.Context, event models.RideEvent) error {
	return g.publish(ctx, constants.SubjectRideCompleted, event)
}

func (g *RideGW) publish(ctx context.Context, subject string, event models.RideEvent) error {
	defer nrpkg.StartMessageSegment(ctx, subject)()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", subject, err)
	}
	if err := g.publisher.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", subject, err)
	}
	return nil
}
