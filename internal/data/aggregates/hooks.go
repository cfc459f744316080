package aggregates

import (
	"time"

	"github.com/yungbote/tasknotes-backend/internal/observability"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
)

// SlowWriteThreshold is the write duration above which a write is logged as slow.
const SlowWriteThreshold = 500 * time.Millisecond

// Hooks receives one ObserveOperation per aggregate write, plus IncConflict or
// IncRetry when the write failed with that code.
type Hooks interface {
	ObserveOperation(name, status string, dur time.Duration)
	IncConflict(name string)
	IncRetry(name string)
}

type noopHooks struct{}

func (noopHooks) ObserveOperation(string, string, time.Duration) {}
func (noopHooks) IncConflict(string)                             {}
func (noopHooks) IncRetry(string)                                {}

// writeHooks feeds the tn_aggregate_* series and logs contention on todo lists and notes.
type writeHooks struct {
	metrics *observability.Metrics
	log     *logger.Logger
}

// NewObservabilityHooks returns hooks backed by metrics and log. Either may be nil.
func NewObservabilityHooks(metrics *observability.Metrics, log *logger.Logger) Hooks {
	if metrics == nil && log == nil {
		return noopHooks{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &writeHooks{metrics: metrics, log: log.With("component", "AggregateHooks")}
}

func (h *writeHooks) ObserveOperation(name, status string, dur time.Duration) {
	h.metrics.ObserveAggregateOperation(name, status, dur)
	if dur >= SlowWriteThreshold {
		h.log.Warn("slow aggregate write", "op", name, "status", status, "duration_ms", dur.Milliseconds())
	}
}

func (h *writeHooks) IncConflict(name string) {
	h.metrics.IncAggregateConflict(name)
	h.log.Warn("aggregate write conflict", "op", name)
}

func (h *writeHooks) IncRetry(name string) {
	h.metrics.IncAggregateRetry(name)
	h.log.Warn("aggregate write retryable failure", "op", name)
}
