package messaging

import (
	"context"

	"github.com/parametriclabs/policyd/internal/domain"
)

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a committed lifecycle transition to the broker
	PublishEvent(ctx context.Context, event *domain.LifecycleEvent) error
	// Close closes the connection
	Close()
}
