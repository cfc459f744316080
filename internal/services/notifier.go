package services

import (
	"context"
	"time"

	"github.com/yungbote/tasknotes-backend/internal/domain"
	"github.com/yungbote/tasknotes-backend/internal/realtime"
)

// =========================
// Change notifier
// =========================

type ChangeNotifier interface {
	TodoListChanged(ctx context.Context, typ realtime.EventType, listID uint64, at time.Time)
	TodoChanged(ctx context.Context, typ realtime.EventType, listID, todoID uint64, at time.Time)
	NoteChanged(ctx context.Context, typ realtime.EventType, noteID uint64, at time.Time)
}

type changeNotifier struct {
	emit EventEmitter
}

// NewChangeNotifier returns a notifier that drops every event when emit is nil.
func NewChangeNotifier(emit EventEmitter) ChangeNotifier {
	return &changeNotifier{emit: emit}
}

func (n *changeNotifier) TodoListChanged(ctx context.Context, typ realtime.EventType, listID uint64, at time.Time) {
	if n == nil || n.emit == nil || listID == 0 {
		return
	}
	n.emit.Emit(ctx, realtime.NewEvent(typ, domain.EntityTodoList, listID, 0, at))
}

func (n *changeNotifier) TodoChanged(ctx context.Context, typ realtime.EventType, listID, todoID uint64, at time.Time) {
	if n == nil || n.emit == nil || todoID == 0 {
		return
	}
	n.emit.Emit(ctx, realtime.NewEvent(typ, domain.EntityTodo, todoID, listID, at))
}

func (n *changeNotifier) NoteChanged(ctx context.Context, typ realtime.EventType, noteID uint64, at time.Time) {
	if n == nil || n.emit == nil || noteID == 0 {
		return
	}
	n.emit.Emit(ctx, realtime.NewEvent(typ, domain.EntityNote, noteID, 0, at))
}
