package views

import (
	"strings"
	"testing"
	"time"

	"github.com/yungbote/tasknotes-backend/internal/domain"
)

func TestCompletionPercentage(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{3, 3, 100},
	}
	for _, tc := range cases {
		if got := CompletionPercentage(tc.completed, tc.total); got != tc.want {
			t.Fatalf("CompletionPercentage(%d,%d): want=%d got=%d", tc.completed, tc.total, tc.want, got)
		}
	}
}

func TestFromTodoListDerivesCounts(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := &domain.TodoList{
		ID:        7,
		Name:      "Groceries",
		CreatedAt: at,
		UpdatedAt: at.Add(time.Hour),
		Todos: []domain.Todo{
			{ID: 1, TodoListID: 7, Description: "Milk", Completed: true},
			{ID: 2, TodoListID: 7, Description: "Eggs"},
		},
	}
	v := FromTodoList(l)
	if v.TotalTodos != 2 || v.CompletedTodos != 1 {
		t.Fatalf("counts: total=%d completed=%d", v.TotalTodos, v.CompletedTodos)
	}
	if v.ProgressString != "1/2" || v.CompletionPercentage != 50 {
		t.Fatalf("progress=%q pct=%d", v.ProgressString, v.CompletionPercentage)
	}
	if v.CompletedTodos+(v.TotalTodos-v.CompletedTodos) != v.TotalTodos {
		t.Fatalf("completed + pending must equal total")
	}
	if v.Todos[0].Description != "Milk" || !v.UpdatedAt.Equal(at.Add(time.Hour)) {
		t.Fatalf("unexpected view: %+v", v)
	}

	empty := FromTodoList(&domain.TodoList{ID: 8, Name: "Empty"})
	if empty.ProgressString != "0/0" || empty.CompletionPercentage != 0 || empty.Todos == nil {
		t.Fatalf("empty list view: %+v", empty)
	}
}

func TestPreview(t *testing.T) {
	if got := Preview(""); got != PreviewPlaceholder {
		t.Fatalf("empty body: %q", got)
	}
	if got := Preview(" \n\t"); got != "No content yet." {
		t.Fatalf("blank body: %q", got)
	}
	short := strings.Repeat("a", 100)
	if got := Preview(short); got != short {
		t.Fatalf("100 chars must not be truncated: %q", got)
	}
	long := strings.Repeat("ü", 101)
	got := Preview(long)
	if got != strings.Repeat("ü", 100)+"..." {
		t.Fatalf("long body preview: %q", got)
	}
}

func TestDashboardItemVariants(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	list := TodoListItem{View: FromTodoList(&domain.TodoList{
		ID: 1, Name: "Trip", CreatedAt: now.Add(-3 * time.Hour), UpdatedAt: now.Add(-2 * time.Hour),
		Todos: []domain.Todo{{Completed: true}, {Completed: true}, {Completed: false}},
	})}
	note := NoteItem{View: FromNote(&domain.Note{
		ID: 1, Title: "Ideas", CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour),
	})}

	lv := ToDashboardItemView(list, now)
	if lv.EntityType != domain.EntityTodoList || lv.ProgressString == nil || *lv.ProgressString != "2/3" || lv.CompletionPercentage != 67 {
		t.Fatalf("list item view: %+v", lv)
	}
	if lv.TimeLabel != "Last updated 2 hours ago" {
		t.Fatalf("list time label: %q", lv.TimeLabel)
	}

	nv := ToDashboardItemView(note, now)
	if nv.EntityType != domain.EntityNote || nv.ProgressString != nil || nv.CompletionPercentage != 0 {
		t.Fatalf("note item view: %+v", nv)
	}
	if nv.Title != "Ideas" || nv.TimeLabel != "Created 1 hour ago" {
		t.Fatalf("note title/label: %+v", nv)
	}
}

func TestSortByRecency(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []DashboardItem{
		TodoListItem{View: TodoListView{ID: 1, UpdatedAt: t1}},
		TodoListItem{View: TodoListView{ID: 2, UpdatedAt: t1.Add(time.Minute)}},
		NoteItem{View: NoteView{ID: 1, UpdatedAt: t1.Add(2 * time.Minute)}},
		NoteItem{View: NoteView{ID: 2, UpdatedAt: t1}},
	}
	SortByRecency(items)

	want := []struct {
		kind domain.EntityType
		id   uint64
	}{
		{domain.EntityNote, 1},
		{domain.EntityTodoList, 2},
		{domain.EntityTodoList, 1},
		{domain.EntityNote, 2},
	}
	for i, w := range want {
		if items[i].EntityType() != w.kind || items[i].ItemID() != w.id {
			t.Fatalf("position %d: want %s#%d got %s#%d", i, w.kind, w.id, items[i].EntityType(), items[i].ItemID())
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{-time.Minute, "just now"},
		{30 * time.Second, "just now"},
		{time.Minute, "1 minute ago"},
		{45 * time.Minute, "45 minutes ago"},
		{time.Hour, "1 hour ago"},
		{5 * time.Hour, "5 hours ago"},
		{24 * time.Hour, "yesterday"},
		{3 * 24 * time.Hour, "3 days ago"},
		{8 * 24 * time.Hour, "1 week ago"},
		{21 * 24 * time.Hour, "3 weeks ago"},
	}
	for _, tc := range cases {
		if got := RelativeTime(now.Add(-tc.ago), now); got != tc.want {
			t.Fatalf("RelativeTime(-%s): want=%q got=%q", tc.ago, tc.want, got)
		}
	}
	if got := RelativeTime(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), now); got != "3 months ago" {
		t.Fatalf("months: %q", got)
	}
	if got := RelativeTime(time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC), now); got != "1 month ago" {
		t.Fatalf("one month: %q", got)
	}
	if got := RelativeTime(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), now); got != "2 years ago" {
		t.Fatalf("years: %q", got)
	}
	if got := RelativeTime(time.Time{}, now); got != "" {
		t.Fatalf("zero time: %q", got)
	}
}

func TestSmartTimeDisplay(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	created := now.Add(-3 * time.Hour)
	if got := SmartTimeDisplay(created, created.Add(90*time.Second), now); got != "Created 3 hours ago" {
		t.Fatalf("fresh item: %q", got)
	}
	if got := SmartTimeDisplay(created, now.Add(-10*time.Minute), now); got != "Last updated 10 minutes ago" {
		t.Fatalf("edited item: %q", got)
	}
	if got := SmartTimeDisplay(time.Time{}, time.Time{}, now); got != "" {
		t.Fatalf("zero times: %q", got)
	}
}
