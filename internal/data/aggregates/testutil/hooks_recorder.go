package testutil

import (
	"sync"
	"time"

	"github.com/yungbote/tasknotes-backend/internal/data/aggregates"
)

type SignalKind string

const (
	SignalWrite    SignalKind = "write"
	SignalConflict SignalKind = "conflict"
	SignalRetry    SignalKind = "retry"
)

// Signal is one hook call. Status and Duration are only set for SignalWrite.
type Signal struct {
	Kind     SignalKind
	Op       string
	Status   string
	Duration time.Duration
}

// HooksRecorder keeps every aggregate hook call in arrival order.
type HooksRecorder struct {
	mu      sync.Mutex
	signals []Signal
}

var _ aggregates.Hooks = (*HooksRecorder)(nil)

func (h *HooksRecorder) ObserveOperation(name, status string, dur time.Duration) {
	h.record(Signal{Kind: SignalWrite, Op: name, Status: status, Duration: dur})
}

func (h *HooksRecorder) IncConflict(name string) {
	h.record(Signal{Kind: SignalConflict, Op: name})
}

func (h *HooksRecorder) IncRetry(name string) {
	h.record(Signal{Kind: SignalRetry, Op: name})
}

func (h *HooksRecorder) record(s Signal) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.signals = append(h.signals, s)
}

// Writes returns the completed write operations, oldest first.
func (h *HooksRecorder) Writes() []Signal {
	return h.filter(func(s Signal) bool { return s.Kind == SignalWrite })
}

// Statuses lists the outcome of each write of op, oldest first.
func (h *HooksRecorder) Statuses(op string) []string {
	writes := h.filter(func(s Signal) bool { return s.Kind == SignalWrite && s.Op == op })
	out := make([]string, 0, len(writes))
	for _, s := range writes {
		out = append(out, s.Status)
	}
	return out
}

func (h *HooksRecorder) Count(kind SignalKind, op string) int {
	return len(h.filter(func(s Signal) bool { return s.Kind == kind && s.Op == op }))
}

func (h *HooksRecorder) filter(keep func(Signal) bool) []Signal {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := []Signal{}
	for _, s := range h.signals {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
