package services

import (
	"context"
	"time"

	"github.com/yungbote/tasknotes-backend/internal/observability"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
	"github.com/yungbote/tasknotes-backend/internal/realtime"
	"github.com/yungbote/tasknotes-backend/internal/realtime/bus"
)

const publishTimeout = 2 * time.Second

type EventEmitter interface {
	Emit(ctx context.Context, ev realtime.Event)
}

// BusEmitter publishes on the bus after the write has committed. Failures are
// logged and counted; they never reach the caller.
type BusEmitter struct {
	Bus     bus.Bus
	Log     *logger.Logger
	Metrics *observability.Metrics
}

func (e *BusEmitter) Emit(ctx context.Context, ev realtime.Event) {
	if e == nil || e.Bus == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := e.Bus.Publish(pubCtx, ev); err != nil {
		e.Metrics.IncEventFailed(string(ev.Type))
		if e.Log != nil {
			e.Log.Warn("event publish failed", "type", ev.Type, "entity_id", ev.EntityID, "error", err)
		}
		return
	}
	e.Metrics.IncEventPublished(string(ev.Type))
}
