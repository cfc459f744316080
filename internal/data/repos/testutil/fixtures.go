package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/tasknotes-backend/internal/domain"
)

func SeedList(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, at time.Time) *domain.TodoList {
	tb.Helper()
	l := &domain.TodoList{
		Name:      name,
		CreatedAt: at.UTC(),
		UpdatedAt: at.UTC(),
	}
	if err := tx.WithContext(ctx).Omit("Todos").Create(l).Error; err != nil {
		tb.Fatalf("seed todo list: %v", err)
	}
	return l
}

func SeedTodo(tb testing.TB, ctx context.Context, tx *gorm.DB, listID uint64, description string, completed bool, at time.Time) *domain.Todo {
	tb.Helper()
	t := &domain.Todo{
		TodoListID:  listID,
		Description: description,
		Completed:   completed,
		CreatedAt:   at.UTC(),
		UpdatedAt:   at.UTC(),
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed todo: %v", err)
	}
	return t
}

func SeedNote(tb testing.TB, ctx context.Context, tx *gorm.DB, title, body string, at time.Time) *domain.Note {
	tb.Helper()
	n := &domain.Note{
		Title:     title,
		Body:      body,
		CreatedAt: at.UTC(),
		UpdatedAt: at.UTC(),
	}
	if err := tx.WithContext(ctx).Create(n).Error; err != nil {
		tb.Fatalf("seed note: %v", err)
	}
	return n
}

func PtrBool(v bool) *bool { return &v }
