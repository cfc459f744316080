package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/tasknotes-backend/internal/domain"
)

func TestBuildDashboardOrdersByRecency(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	list, err := h.todos.CreateList(ctx, "Older list")
	require.NoError(t, err)

	h.clk.Advance(time.Minute)
	note, err := h.notes.CreateNote(ctx, NoteInput{Title: "Newer note"})
	require.NoError(t, err)

	items, err := h.dashboard.BuildDashboard(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, domain.EntityNote, items[0].EntityType)
	require.Equal(t, note.ID, items[0].ID)
	require.Nil(t, items[0].ProgressString)
	require.Equal(t, 0, items[0].CompletionPercentage)
	require.Equal(t, domain.EntityTodoList, items[1].EntityType)
	require.Equal(t, list.ID, items[1].ID)

	h.clk.Advance(time.Minute)
	_, ok, err := h.todos.CreateTodo(ctx, list.ID, "bumps the list")
	require.NoError(t, err)
	require.True(t, ok)

	items, err = h.dashboard.BuildDashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.EntityTodoList, items[0].EntityType)
	require.NotNil(t, items[0].ProgressString)
	require.Equal(t, "0/1", *items[0].ProgressString)
	require.Equal(t, "Older list", items[0].Title)
	require.Equal(t, "Created 1 minute ago", items[1].TimeLabel)
}

func TestBuildDashboardEmpty(t *testing.T) {
	h := newHarness(t)
	items, err := h.dashboard.BuildDashboard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}
