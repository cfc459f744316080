package todo

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/tasknotes-backend/internal/data/repos/testutil"
	"github.com/yungbote/tasknotes-backend/internal/domain"
	"github.com/yungbote/tasknotes-backend/internal/platform/dbctx"
)

func TestTodoListRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewTodoListRepo(db, testutil.Logger(t))
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	created, err := repo.Create(dbc, []*domain.TodoList{
		{Name: "Groceries", CreatedAt: at, UpdatedAt: at},
		{Name: "Chores", CreatedAt: at, UpdatedAt: at},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 2 || created[0].ID == 0 || created[1].ID <= created[0].ID {
		t.Fatalf("Create: expected monotonic ids, got %+v", created)
	}

	got, err := repo.GetByID(dbc, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Name != "Groceries" || !got.CreatedAt.Equal(at) {
		t.Fatalf("GetByID: unexpected result: %+v", got)
	}

	missing, err := repo.GetByID(dbc, 9999)
	if err != nil {
		t.Fatalf("GetByID (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByID (missing): expected nil, got %+v", missing)
	}

	later := at.Add(time.Hour)
	if err := repo.Rename(dbc, created[0].ID, "Food", later); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	got, _ = repo.GetByID(dbc, created[0].ID)
	if got.Name != "Food" || !got.UpdatedAt.Equal(later) || !got.CreatedAt.Equal(at) {
		t.Fatalf("Rename: unexpected row: %+v", got)
	}

	testutil.SeedTodo(t, ctx, db, created[0].ID, "Milk", false, at)
	testutil.SeedTodo(t, ctx, db, created[0].ID, "Eggs", true, at)

	withTodos, err := repo.GetByIDWithTodos(dbc, created[0].ID)
	if err != nil {
		t.Fatalf("GetByIDWithTodos: %v", err)
	}
	if len(withTodos.Todos) != 2 || withTodos.Todos[0].Description != "Milk" {
		t.Fatalf("GetByIDWithTodos: unexpected todos: %+v", withTodos.Todos)
	}

	all, err := repo.ListAllWithTodos(dbc)
	if err != nil {
		t.Fatalf("ListAllWithTodos: %v", err)
	}
	if len(all) != 2 || len(all[0].Todos) != 2 || len(all[1].Todos) != 0 {
		t.Fatalf("ListAllWithTodos: unexpected result: %+v", all)
	}

	n, err := repo.Delete(dbc, created[1].ID)
	if err != nil || n != 1 {
		t.Fatalf("Delete: n=%d err=%v", n, err)
	}
	n, err = repo.Delete(dbc, created[1].ID)
	if err != nil || n != 0 {
		t.Fatalf("Delete (again): n=%d err=%v", n, err)
	}
}

func TestTodoListRepoLockByIDRequiresTx(t *testing.T) {
	db := testutil.DB(t)
	repo := NewTodoListRepo(db, testutil.Logger(t))
	if _, err := repo.LockByID(dbctx.Context{Ctx: context.Background()}, 1); err == nil {
		t.Fatalf("expected error without tx")
	}
}
