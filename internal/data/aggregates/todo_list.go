package aggregates

import (
	"context"
	"fmt"

	"github.com/yungbote/tasknotes-backend/internal/data/repos"
	"github.com/yungbote/tasknotes-backend/internal/domain"
	domainagg "github.com/yungbote/tasknotes-backend/internal/domain/aggregates"
	"github.com/yungbote/tasknotes-backend/internal/platform/dbctx"
)

type TodoListAggregateDeps struct {
	Base BaseDeps

	Lists repos.TodoListRepo
	Todos repos.TodoRepo
}

type todoListAggregate struct {
	deps TodoListAggregateDeps
}

func NewTodoListAggregate(deps TodoListAggregateDeps) domainagg.TodoListAggregate {
	deps.Base = deps.Base.withDefaults()
	return &todoListAggregate{deps: deps}
}

func (a *todoListAggregate) Contract() domainagg.Contract {
	return domainagg.TodoListAggregateContract
}

func (a *todoListAggregate) configured(op string) error {
	if a.deps.Lists == nil || a.deps.Todos == nil {
		return domainagg.NewError(domainagg.CodeInternal, op, "todo list aggregate repos not configured", nil)
	}
	return nil
}

func (a *todoListAggregate) CreateList(ctx context.Context, in domainagg.CreateListInput) (*domain.TodoList, error) {
	const op = "Todo.CreateList"
	if err := domainagg.RequireText(op, "name", in.Name, domain.MaxNameLength); err != nil {
		return nil, err
	}
	if err := a.configured(op); err != nil {
		return nil, err
	}

	var out *domain.TodoList
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		now := a.deps.Base.Clock.Now()
		created, err := a.deps.Lists.Create(dbc, []*domain.TodoList{{
			Name:      in.Name,
			CreatedAt: now,
			UpdatedAt: now,
		}})
		if err != nil {
			return err
		}
		if len(created) != 1 || created[0].ID == 0 {
			return InvariantError("todo list insert returned no id")
		}
		out = created[0]
		out.Todos = []domain.Todo{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *todoListAggregate) RenameList(ctx context.Context, in domainagg.RenameListInput) (*domain.TodoList, error) {
	const op = "Todo.RenameList"
	if err := domainagg.RequireText(op, "name", in.Name, domain.MaxNameLength); err != nil {
		return nil, err
	}
	if err := a.configured(op); err != nil {
		return nil, err
	}

	var out *domain.TodoList
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		if _, err := lockList(dbc, a.deps.Lists, op, in.ListID); err != nil {
			return err
		}
		if err := a.deps.Lists.Rename(dbc, in.ListID, in.Name, a.deps.Base.Clock.Now()); err != nil {
			return err
		}
		list, err := a.deps.Lists.GetByIDWithTodos(dbc, in.ListID)
		if err != nil {
			return err
		}
		if list == nil {
			return InvariantError("todo list vanished during rename")
		}
		out = list
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteList removes owned todos first, then the list, in one transaction.
// An unknown list is not an error: the result reports Existed=false.
func (a *todoListAggregate) DeleteList(ctx context.Context, listID uint64) (domainagg.DeleteListResult, error) {
	const op = "Todo.DeleteList"
	var out domainagg.DeleteListResult
	if err := a.configured(op); err != nil {
		return out, err
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		list, err := a.deps.Lists.LockByID(dbc, listID)
		if err != nil {
			return err
		}
		if list == nil {
			return nil
		}
		total, err := a.deps.Todos.CountByList(dbc, listID)
		if err != nil {
			return err
		}
		completed, err := a.deps.Todos.CountByListAndCompleted(dbc, listID, true)
		if err != nil {
			return err
		}
		removed, err := a.deps.Todos.DeleteByList(dbc, listID)
		if err != nil {
			return err
		}
		if removed != total {
			return InvariantError(fmt.Sprintf("cascade removed %d of %d todos", removed, total))
		}
		n, err := a.deps.Lists.Delete(dbc, listID)
		if err != nil {
			return err
		}
		if err := RequireAffected(n, "locked todo list was not deleted"); err != nil {
			return err
		}
		out = domainagg.DeleteListResult{Existed: true, TodosDeleted: removed, CompletedDeleted: completed}
		return nil
	})
	if err != nil {
		return domainagg.DeleteListResult{}, err
	}
	return out, nil
}

func (a *todoListAggregate) CreateTodo(ctx context.Context, in domainagg.CreateTodoInput) (*domain.Todo, error) {
	const op = "Todo.CreateTodo"
	if err := a.configured(op); err != nil {
		return nil, err
	}

	var out *domain.Todo
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		if _, err := lockList(dbc, a.deps.Lists, op, in.ListID); err != nil {
			return err
		}
		if err := domainagg.RequireText(op, "description", in.Description, domain.MaxDescriptionLength); err != nil {
			return err
		}
		now := a.deps.Base.Clock.Now()
		created, err := a.deps.Todos.Create(dbc, []*domain.Todo{{
			TodoListID:  in.ListID,
			Description: in.Description,
			Completed:   false,
			CreatedAt:   now,
			UpdatedAt:   now,
		}})
		if err != nil {
			return err
		}
		if len(created) != 1 || created[0].ID == 0 {
			return InvariantError("todo insert returned no id")
		}
		if err := a.deps.Lists.Touch(dbc, in.ListID, now); err != nil {
			return err
		}
		out = created[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *todoListAggregate) UpdateTodo(ctx context.Context, in domainagg.UpdateTodoInput) (*domain.Todo, error) {
	const op = "Todo.UpdateTodo"
	if err := a.configured(op); err != nil {
		return nil, err
	}

	var out *domain.Todo
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		if _, err := lockList(dbc, a.deps.Lists, op, in.ListID); err != nil {
			return err
		}
		todo, err := loadOwnedTodo(dbc, a.deps.Todos, op, in.ListID, in.TodoID)
		if err != nil {
			return err
		}
		if err := domainagg.RequireText(op, "description", in.Description, domain.MaxDescriptionLength); err != nil {
			return err
		}
		now := a.deps.Base.Clock.Now()
		if err := a.deps.Todos.UpdateFields(dbc, in.ListID, in.TodoID, map[string]interface{}{
			"description": in.Description,
			"updated_at":  now,
		}); err != nil {
			return err
		}
		if err := a.deps.Lists.Touch(dbc, in.ListID, now); err != nil {
			return err
		}
		todo.Description = in.Description
		todo.UpdatedAt = now
		out = todo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *todoListAggregate) SetCompletion(ctx context.Context, in domainagg.SetCompletionInput) (*domain.Todo, error) {
	const op = "Todo.SetCompletion"
	if err := a.configured(op); err != nil {
		return nil, err
	}

	var out *domain.Todo
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		if _, err := lockList(dbc, a.deps.Lists, op, in.ListID); err != nil {
			return err
		}
		todo, err := loadOwnedTodo(dbc, a.deps.Todos, op, in.ListID, in.TodoID)
		if err != nil {
			return err
		}
		now := a.deps.Base.Clock.Now()
		if err := a.deps.Todos.UpdateFields(dbc, in.ListID, in.TodoID, map[string]interface{}{
			"completed":  in.Completed,
			"updated_at": now,
		}); err != nil {
			return err
		}
		if err := a.deps.Lists.Touch(dbc, in.ListID, now); err != nil {
			return err
		}
		todo.Completed = in.Completed
		todo.UpdatedAt = now
		out = todo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteTodo reports false, without error, when the list is unknown or does not own the todo.
func (a *todoListAggregate) DeleteTodo(ctx context.Context, in domainagg.DeleteTodoInput) (bool, error) {
	const op = "Todo.DeleteTodo"
	if err := a.configured(op); err != nil {
		return false, err
	}

	existed := false
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		list, err := a.deps.Lists.LockByID(dbc, in.ListID)
		if err != nil {
			return err
		}
		if list == nil {
			return nil
		}
		n, err := a.deps.Todos.Delete(dbc, in.ListID, in.TodoID)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		if err := a.deps.Lists.Touch(dbc, in.ListID, a.deps.Base.Clock.Now()); err != nil {
			return err
		}
		existed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return existed, nil
}
