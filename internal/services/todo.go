package services

import (
	"context"
	"sort"

	"github.com/yungbote/tasknotes-backend/internal/data/repos"
	"github.com/yungbote/tasknotes-backend/internal/domain"
	domainagg "github.com/yungbote/tasknotes-backend/internal/domain/aggregates"
	"github.com/yungbote/tasknotes-backend/internal/platform/clock"
	"github.com/yungbote/tasknotes-backend/internal/platform/dbctx"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
	"github.com/yungbote/tasknotes-backend/internal/realtime"
	"github.com/yungbote/tasknotes-backend/internal/views"
)

// TodoService is the TodoList/Todo entry point. Writes go through the aggregate;
// reads go straight to the table repos. Methods returning ok=false mean "absent",
// which is never reported as an error.
type TodoService interface {
	GetList(ctx context.Context, id uint64) (views.TodoListView, bool, error)
	ListAllLists(ctx context.Context) ([]views.TodoListView, error)
	CreateList(ctx context.Context, name string) (views.TodoListView, error)
	RenameList(ctx context.Context, id uint64, name string) (views.TodoListView, bool, error)
	DeleteList(ctx context.Context, id uint64) (bool, error)

	// ListTodos returns an empty slice and ok=false for an unknown list.
	// Without a filter, incomplete todos come first and insertion order is kept within each group.
	ListTodos(ctx context.Context, listID uint64, completed *bool) ([]views.TodoView, bool, error)
	GetTodo(ctx context.Context, listID, todoID uint64) (views.TodoView, bool, error)
	CreateTodo(ctx context.Context, listID uint64, description string) (views.TodoView, bool, error)
	UpdateTodo(ctx context.Context, listID, todoID uint64, description string) (views.TodoView, bool, error)
	SetCompletion(ctx context.Context, listID, todoID uint64, completed bool) (views.TodoView, bool, error)
	MarkComplete(ctx context.Context, listID, todoID uint64) (views.TodoView, bool, error)
	MarkIncomplete(ctx context.Context, listID, todoID uint64) (views.TodoView, bool, error)
	DeleteTodo(ctx context.Context, listID, todoID uint64) (bool, error)
}

type todoService struct {
	log    *logger.Logger
	agg    domainagg.TodoListAggregate
	lists  repos.TodoListRepo
	todos  repos.TodoRepo
	notify ChangeNotifier
	clock  clock.Clock
}

func NewTodoService(log *logger.Logger, agg domainagg.TodoListAggregate, lists repos.TodoListRepo, todos repos.TodoRepo, notify ChangeNotifier, clk clock.Clock) TodoService {
	if notify == nil {
		notify = NewChangeNotifier(nil)
	}
	if clk == nil {
		clk = clock.System()
	}
	return &todoService{
		log:    log.With("service", "TodoService"),
		agg:    agg,
		lists:  lists,
		todos:  todos,
		notify: notify,
		clock:  clk,
	}
}

func (s *todoService) GetList(ctx context.Context, id uint64) (views.TodoListView, bool, error) {
	l, err := s.lists.GetByIDWithTodos(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return views.TodoListView{}, false, err
	}
	if l == nil {
		return views.TodoListView{}, false, nil
	}
	return views.FromTodoList(l), true, nil
}

func (s *todoService) ListAllLists(ctx context.Context) ([]views.TodoListView, error) {
	all, err := s.lists.ListAllWithTodos(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, err
	}
	out := make([]views.TodoListView, 0, len(all))
	for _, l := range all {
		out = append(out, views.FromTodoList(l))
	}
	return out, nil
}

func (s *todoService) CreateList(ctx context.Context, name string) (views.TodoListView, error) {
	l, err := s.agg.CreateList(ctx, domainagg.CreateListInput{Name: name})
	if err != nil {
		return views.TodoListView{}, err
	}
	s.notify.TodoListChanged(ctx, realtime.EventTodoListCreated, l.ID, l.UpdatedAt)
	return views.FromTodoList(l), nil
}

func (s *todoService) RenameList(ctx context.Context, id uint64, name string) (views.TodoListView, bool, error) {
	l, err := s.agg.RenameList(ctx, domainagg.RenameListInput{ListID: id, Name: name})
	if ok, err := absence(err); !ok {
		return views.TodoListView{}, false, err
	}
	s.notify.TodoListChanged(ctx, realtime.EventTodoListUpdated, l.ID, l.UpdatedAt)
	return views.FromTodoList(l), true, nil
}

func (s *todoService) DeleteList(ctx context.Context, id uint64) (bool, error) {
	res, err := s.agg.DeleteList(ctx, id)
	if err != nil {
		return false, err
	}
	if res.Existed {
		s.log.Debug("todo list deleted", "list_id", id, "todos_deleted", res.TodosDeleted, "completed_deleted", res.CompletedDeleted)
		s.notify.TodoListChanged(ctx, realtime.EventTodoListDeleted, id, s.clock.Now())
	}
	return res.Existed, nil
}

func (s *todoService) ListTodos(ctx context.Context, listID uint64, completed *bool) ([]views.TodoView, bool, error) {
	dbc := dbctx.Context{Ctx: ctx}
	l, err := s.lists.GetByID(dbc, listID)
	if err != nil {
		return nil, false, err
	}
	if l == nil {
		return []views.TodoView{}, false, nil
	}
	rows, err := s.todos.ListByList(dbc, listID, completed)
	if err != nil {
		return nil, false, err
	}
	if completed == nil {
		sortIncompleteFirst(rows)
	}
	return views.FromTodos(rows), true, nil
}

func sortIncompleteFirst(rows []*domain.Todo) {
	sort.SliceStable(rows, func(i, j int) bool {
		return !rows[i].Completed && rows[j].Completed
	})
}

func (s *todoService) GetTodo(ctx context.Context, listID, todoID uint64) (views.TodoView, bool, error) {
	t, err := s.todos.GetByListAndID(dbctx.Context{Ctx: ctx}, listID, todoID)
	if err != nil {
		return views.TodoView{}, false, err
	}
	if t == nil {
		return views.TodoView{}, false, nil
	}
	return views.FromTodo(t), true, nil
}

func (s *todoService) CreateTodo(ctx context.Context, listID uint64, description string) (views.TodoView, bool, error) {
	t, err := s.agg.CreateTodo(ctx, domainagg.CreateTodoInput{ListID: listID, Description: description})
	if ok, err := absence(err); !ok {
		return views.TodoView{}, false, err
	}
	s.notify.TodoChanged(ctx, realtime.EventTodoCreated, listID, t.ID, t.UpdatedAt)
	return views.FromTodo(t), true, nil
}

func (s *todoService) UpdateTodo(ctx context.Context, listID, todoID uint64, description string) (views.TodoView, bool, error) {
	t, err := s.agg.UpdateTodo(ctx, domainagg.UpdateTodoInput{ListID: listID, TodoID: todoID, Description: description})
	if ok, err := absence(err); !ok {
		return views.TodoView{}, false, err
	}
	s.notify.TodoChanged(ctx, realtime.EventTodoUpdated, listID, t.ID, t.UpdatedAt)
	return views.FromTodo(t), true, nil
}

func (s *todoService) SetCompletion(ctx context.Context, listID, todoID uint64, completed bool) (views.TodoView, bool, error) {
	t, err := s.agg.SetCompletion(ctx, domainagg.SetCompletionInput{ListID: listID, TodoID: todoID, Completed: completed})
	if ok, err := absence(err); !ok {
		return views.TodoView{}, false, err
	}
	s.notify.TodoChanged(ctx, realtime.EventTodoUpdated, listID, t.ID, t.UpdatedAt)
	return views.FromTodo(t), true, nil
}

func (s *todoService) MarkComplete(ctx context.Context, listID, todoID uint64) (views.TodoView, bool, error) {
	return s.SetCompletion(ctx, listID, todoID, true)
}

func (s *todoService) MarkIncomplete(ctx context.Context, listID, todoID uint64) (views.TodoView, bool, error) {
	return s.SetCompletion(ctx, listID, todoID, false)
}

func (s *todoService) DeleteTodo(ctx context.Context, listID, todoID uint64) (bool, error) {
	existed, err := s.agg.DeleteTodo(ctx, domainagg.DeleteTodoInput{ListID: listID, TodoID: todoID})
	if err != nil {
		return false, err
	}
	if existed {
		s.notify.TodoChanged(ctx, realtime.EventTodoDeleted, listID, todoID, s.clock.Now())
	}
	return existed, nil
}
