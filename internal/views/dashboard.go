package views

import (
	"sort"
	"time"

	"github.com/yungbote/tasknotes-backend/internal/domain"
)

// DashboardItem is the read-only accessor contract shared by every dashboard variant.
// The set of variants is closed: TodoListItem and NoteItem.
type DashboardItem interface {
	ItemID() uint64
	Title() string
	EntityType() domain.EntityType
	CreatedAt() time.Time
	UpdatedAt() time.Time
	// ProgressString is absent (ok=false) for variants without progress.
	ProgressString() (string, bool)
	CompletionPercentage() int

	dashboardItem()
}

type TodoListItem struct {
	View TodoListView
}

func (i TodoListItem) ItemID() uint64                 { return i.View.ID }
func (i TodoListItem) Title() string                  { return i.View.Name }
func (i TodoListItem) EntityType() domain.EntityType  { return domain.EntityTodoList }
func (i TodoListItem) CreatedAt() time.Time           { return i.View.CreatedAt }
func (i TodoListItem) UpdatedAt() time.Time           { return i.View.UpdatedAt }
func (i TodoListItem) ProgressString() (string, bool) { return i.View.ProgressString, true }
func (i TodoListItem) CompletionPercentage() int      { return i.View.CompletionPercentage }
func (TodoListItem) dashboardItem()                   {}

type NoteItem struct {
	View NoteView
}

func (i NoteItem) ItemID() uint64                 { return i.View.ID }
func (i NoteItem) Title() string                  { return i.View.Title }
func (i NoteItem) EntityType() domain.EntityType  { return domain.EntityNote }
func (i NoteItem) CreatedAt() time.Time           { return i.View.CreatedAt }
func (i NoteItem) UpdatedAt() time.Time           { return i.View.UpdatedAt }
func (i NoteItem) ProgressString() (string, bool) { return "", false }
func (i NoteItem) CompletionPercentage() int      { return 0 }
func (NoteItem) dashboardItem()                   {}

type DashboardItemView struct {
	ID                   uint64            `json:"id"`
	EntityType           domain.EntityType `json:"entityType"`
	Title                string            `json:"title"`
	UpdatedAt            time.Time         `json:"updatedAt"`
	ProgressString       *string           `json:"progressString"`
	CompletionPercentage int               `json:"completionPercentage"`
	TimeLabel            string            `json:"timeLabel"`
}

func ToDashboardItemView(item DashboardItem, now time.Time) DashboardItemView {
	out := DashboardItemView{
		ID:                   item.ItemID(),
		EntityType:           item.EntityType(),
		Title:                item.Title(),
		UpdatedAt:            item.UpdatedAt(),
		CompletionPercentage: item.CompletionPercentage(),
		TimeLabel:            SmartTimeDisplay(item.CreatedAt(), item.UpdatedAt(), now),
	}
	if p, ok := item.ProgressString(); ok {
		out.ProgressString = &p
	}
	return out
}

// SortByRecency orders items by UpdatedAt descending; ties keep their input order.
func SortByRecency(items []DashboardItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].UpdatedAt().After(items[j].UpdatedAt())
	})
}
