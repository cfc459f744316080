package bus

import (
	"context"

	"github.com/yungbote/tasknotes-backend/internal/realtime"
)

type Bus interface {
	Publish(ctx context.Context, ev realtime.Event) error
	StartForwarder(ctx context.Context, onEvent func(ev realtime.Event)) error
	Close() error
}

type noopBus struct{}

// NewNoopBus returns a Bus that drops every event; used when no Redis is configured.
func NewNoopBus() Bus { return noopBus{} }

func (noopBus) Publish(context.Context, realtime.Event) error { return nil }

func (noopBus) StartForwarder(ctx context.Context, _ func(realtime.Event)) error { return nil }

func (noopBus) Close() error { return nil }
