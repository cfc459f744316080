package aggregates

import (
	"fmt"

	"github.com/yungbote/tasknotes-backend/internal/data/repos"
	"github.com/yungbote/tasknotes-backend/internal/domain"
	domainagg "github.com/yungbote/tasknotes-backend/internal/domain/aggregates"
	"github.com/yungbote/tasknotes-backend/internal/platform/dbctx"
)

// lockList takes the row lock on the owning list, serializing child writes
// against the parent updated_at bump. Missing lists are reported as CodeNotFound.
func lockList(dbc dbctx.Context, lists repos.TodoListRepo, op string, listID uint64) (*domain.TodoList, error) {
	list, err := lists.LockByID(dbc, listID)
	if err != nil {
		return nil, err
	}
	if list == nil || list.ID == 0 {
		return nil, domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("todo list not found: %d", listID), nil)
	}
	return list, nil
}

// loadOwnedTodo returns the todo only when it belongs to listID.
func loadOwnedTodo(dbc dbctx.Context, todos repos.TodoRepo, op string, listID, todoID uint64) (*domain.Todo, error) {
	todo, err := todos.GetByListAndID(dbc, listID, todoID)
	if err != nil {
		return nil, err
	}
	if todo == nil || todo.ID == 0 {
		return nil, domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("todo %d not found in list %d", todoID, listID), nil)
	}
	return todo, nil
}

// RequireAffected converts an unexpected zero-row write into an invariant violation.
func RequireAffected(n int64, message string) error {
	if n > 0 {
		return nil
	}
	return InvariantError(message)
}
