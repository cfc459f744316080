package services

import (
	"context"

	"github.com/yungbote/tasknotes-backend/internal/data/repos"
	domainagg "github.com/yungbote/tasknotes-backend/internal/domain/aggregates"
	"github.com/yungbote/tasknotes-backend/internal/platform/clock"
	"github.com/yungbote/tasknotes-backend/internal/platform/dbctx"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
	"github.com/yungbote/tasknotes-backend/internal/realtime"
	"github.com/yungbote/tasknotes-backend/internal/views"
)

// NoteInput carries the optional title and body of a create or update.
type NoteInput = domainagg.NoteInput

type NoteService interface {
	CreateNote(ctx context.Context, in NoteInput) (views.NoteView, error)
	GetNote(ctx context.Context, id uint64) (views.NoteView, bool, error)
	ListAllNotes(ctx context.Context) ([]views.NoteView, error)
	UpdateNote(ctx context.Context, id uint64, in NoteInput) (views.NoteView, bool, error)
	DeleteNote(ctx context.Context, id uint64) (bool, error)
}

type noteService struct {
	log    *logger.Logger
	agg    domainagg.NoteAggregate
	notes  repos.NoteRepo
	notify ChangeNotifier
	clock  clock.Clock
}

func NewNoteService(log *logger.Logger, agg domainagg.NoteAggregate, notes repos.NoteRepo, notify ChangeNotifier, clk clock.Clock) NoteService {
	if notify == nil {
		notify = NewChangeNotifier(nil)
	}
	if clk == nil {
		clk = clock.System()
	}
	return &noteService{
		log:    log.With("service", "NoteService"),
		agg:    agg,
		notes:  notes,
		notify: notify,
		clock:  clk,
	}
}

func (s *noteService) CreateNote(ctx context.Context, in NoteInput) (views.NoteView, error) {
	n, err := s.agg.CreateNote(ctx, in)
	if err != nil {
		return views.NoteView{}, err
	}
	s.notify.NoteChanged(ctx, realtime.EventNoteCreated, n.ID, n.UpdatedAt)
	return views.FromNote(n), nil
}

func (s *noteService) GetNote(ctx context.Context, id uint64) (views.NoteView, bool, error) {
	n, err := s.notes.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return views.NoteView{}, false, err
	}
	if n == nil {
		return views.NoteView{}, false, nil
	}
	return views.FromNote(n), true, nil
}

func (s *noteService) ListAllNotes(ctx context.Context) ([]views.NoteView, error) {
	all, err := s.notes.ListAll(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, err
	}
	return views.FromNotes(all), nil
}

func (s *noteService) UpdateNote(ctx context.Context, id uint64, in NoteInput) (views.NoteView, bool, error) {
	n, err := s.agg.UpdateNote(ctx, id, in)
	if ok, err := absence(err); !ok {
		return views.NoteView{}, false, err
	}
	s.notify.NoteChanged(ctx, realtime.EventNoteUpdated, n.ID, n.UpdatedAt)
	return views.FromNote(n), true, nil
}

func (s *noteService) DeleteNote(ctx context.Context, id uint64) (bool, error) {
	existed, err := s.agg.DeleteNote(ctx, id)
	if err != nil {
		return false, err
	}
	if existed {
		s.notify.NoteChanged(ctx, realtime.EventNoteDeleted, id, s.clock.Now())
	}
	return existed, nil
}
