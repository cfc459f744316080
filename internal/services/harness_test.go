package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/yungbote/tasknotes-backend/internal/data/aggregates"
	"github.com/yungbote/tasknotes-backend/internal/data/repos"
	"github.com/yungbote/tasknotes-backend/internal/data/repos/testutil"
	"github.com/yungbote/tasknotes-backend/internal/platform/clock"
	"github.com/yungbote/tasknotes-backend/internal/realtime"
)

var start = time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

type recordingEmitter struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (r *recordingEmitter) Emit(_ context.Context, ev realtime.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingEmitter) types() []realtime.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]realtime.EventType, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

type harness struct {
	clk       *clock.Fake
	repos     repos.Set
	emitter   *recordingEmitter
	todos     TodoService
	notes     NoteService
	dashboard DashboardService
}

func newHarness(t *testing.T) harness {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	clk := clock.NewFake(start)
	set := repos.NewSet(db, log)
	emitter := &recordingEmitter{}
	notify := NewChangeNotifier(emitter)

	base := aggregates.BaseDeps{DB: db, Log: log, Clock: clk}
	agg := aggregates.NewTodoListAggregate(aggregates.TodoListAggregateDeps{
		Base:  base,
		Lists: set.TodoList,
		Todos: set.Todo,
	})
	noteAgg := aggregates.NewNoteAggregate(aggregates.NoteAggregateDeps{Base: base, Notes: set.Note})
	return harness{
		clk:       clk,
		repos:     set,
		emitter:   emitter,
		todos:     NewTodoService(log, agg, set.TodoList, set.Todo, notify, clk),
		notes:     NewNoteService(log, noteAgg, set.Note, notify, clk),
		dashboard: NewDashboardService(log, set.TodoList, set.Note, clk),
	}
}
