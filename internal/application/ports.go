package application

import (
	"context"

	"github.com/shareit-go/service-shareit/internal/events"
)

// Transactor runs fn inside one atomic unit of work. Repositories called with the
// context handed to fn take part in the same transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher delivers integration events to the message broker.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event events.CloudEvent) error
}
