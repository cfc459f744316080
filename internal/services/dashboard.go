package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/tasknotes-backend/internal/data/repos"
	"github.com/yungbote/tasknotes-backend/internal/domain"
	"github.com/yungbote/tasknotes-backend/internal/platform/clock"
	"github.com/yungbote/tasknotes-backend/internal/platform/dbctx"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
	"github.com/yungbote/tasknotes-backend/internal/views"
)

// DashboardService merges todo lists and notes into one feed, most recently updated first.
// Nothing is cached: every call reads the store and recomputes derived values.
type DashboardService interface {
	Items(ctx context.Context) ([]views.DashboardItem, error)
	BuildDashboard(ctx context.Context) ([]views.DashboardItemView, error)
}

type dashboardService struct {
	log   *logger.Logger
	lists repos.TodoListRepo
	notes repos.NoteRepo
	clock clock.Clock
}

func NewDashboardService(log *logger.Logger, lists repos.TodoListRepo, notes repos.NoteRepo, clk clock.Clock) DashboardService {
	if clk == nil {
		clk = clock.System()
	}
	return &dashboardService{
		log:   log.With("service", "DashboardService"),
		lists: lists,
		notes: notes,
		clock: clk,
	}
}

func (s *dashboardService) Items(ctx context.Context) ([]views.DashboardItem, error) {
	var (
		lists []*domain.TodoList
		notes []*domain.Note
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lists, err = s.lists.ListAllWithTodos(dbctx.Context{Ctx: gctx})
		return err
	})
	g.Go(func() error {
		var err error
		notes, err = s.notes.ListAll(dbctx.Context{Ctx: gctx})
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Warn("dashboard fetch failed", "error", err)
		return nil, err
	}

	items := make([]views.DashboardItem, 0, len(lists)+len(notes))
	for _, l := range lists {
		items = append(items, views.TodoListItem{View: views.FromTodoList(l)})
	}
	for _, n := range notes {
		items = append(items, views.NoteItem{View: views.FromNote(n)})
	}
	views.SortByRecency(items)
	return items, nil
}

func (s *dashboardService) BuildDashboard(ctx context.Context) ([]views.DashboardItemView, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	out := make([]views.DashboardItemView, 0, len(items))
	for _, item := range items {
		out = append(out, views.ToDashboardItemView(item, now))
	}
	return out, nil
}
