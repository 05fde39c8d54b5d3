package health

import (
	"context"
	"errors"

	"github.com/piresc/carpool/internal/pkg/database"
	"github.com/piresc/carpool/internal/pkg/nats"
)

// PostgresChecker pings the primary database
func PostgresChecker(client *database.PostgresClient) Checker {
	if client == nil {
		return nil
	}
	return CheckerFunc(client.Ping)
}

// RedisChecker pings the lock store
func RedisChecker(client *database.RedisClient) Checker {
	if client == nil {
		return nil
	}
	return CheckerFunc(client.Ping)
}

// NATSChecker reports the event bus connection state
func NATSChecker(client *nats.Client) Checker {
	if client == nil {
		return nil
	}
	return CheckerFunc(func(ctx context.Context) error {
		if !client.IsConnected() {
			return errors.New("nats not connected")
		}
		return nil
	})
}
