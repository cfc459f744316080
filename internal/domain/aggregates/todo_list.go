package aggregates

import (
	"context"

	"github.com/yungbote/tasknotes-backend/internal/domain"
)

var TodoListAggregateContract = Contract{
	Name:             "Todo.TodoListAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyInvariantScoped,
	Notes: "Owns todo_list/todo lifecycle: cascade delete of owned todos and the " +
		"parent updated_at bump on every child mutation, each in one transaction.",
}

// TodoListAggregate owns the TodoList -> Todo ownership invariants.
//
// Write method failures return *aggregates.Error with codes:
// CodeValidation, CodeNotFound, CodeRetryable, CodeInternal.
// CodeNotFound covers both an unknown list and a todo that is not owned by the given list.
type TodoListAggregate interface {
	Aggregate

	CreateList(ctx context.Context, in CreateListInput) (*domain.TodoList, error)
	RenameList(ctx context.Context, in RenameListInput) (*domain.TodoList, error)

	// DeleteList removes the list and every todo it owns atomically.
	DeleteList(ctx context.Context, listID uint64) (DeleteListResult, error)

	CreateTodo(ctx context.Context, in CreateTodoInput) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, in UpdateTodoInput) (*domain.Todo, error)
	SetCompletion(ctx context.Context, in SetCompletionInput) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, in DeleteTodoInput) (bool, error)
}

type CreateListInput struct {
	Name string
}

type RenameListInput struct {
	ListID uint64
	Name   string
}

// DeleteListResult summarizes the list at the moment it was removed.
type DeleteListResult struct {
	Existed          bool
	TodosDeleted     int64
	CompletedDeleted int64
}

type CreateTodoInput struct {
	ListID      uint64
	Description string
}

type UpdateTodoInput struct {
	ListID      uint64
	TodoID      uint64
	Description string
}

type SetCompletionInput struct {
	ListID    uint64
	TodoID    uint64
	Completed bool
}

type DeleteTodoInput struct {
	ListID uint64
	TodoID uint64
}
