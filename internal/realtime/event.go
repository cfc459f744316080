package realtime

import (
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/tasknotes-backend/internal/domain"
)

type EventType string

const (
	EventTodoListCreated EventType = "todo_list.created"
	EventTodoListUpdated EventType = "todo_list.updated"
	EventTodoListDeleted EventType = "todo_list.deleted"
	EventTodoCreated     EventType = "todo.created"
	EventTodoUpdated     EventType = "todo.updated"
	EventTodoDeleted     EventType = "todo.deleted"
	EventNoteCreated     EventType = "note.created"
	EventNoteUpdated     EventType = "note.updated"
	EventNoteDeleted     EventType = "note.deleted"
)

// Event announces a committed change to one entity.
// ListID is set for todo events and names the owning list.
type Event struct {
	ID         uuid.UUID         `json:"id"`
	Type       EventType         `json:"type"`
	EntityType domain.EntityType `json:"entity_type"`
	EntityID   uint64            `json:"entity_id"`
	ListID     uint64            `json:"list_id,omitempty"`
	At         time.Time         `json:"at"`
}

func NewEvent(typ EventType, entity domain.EntityType, entityID, listID uint64, at time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Type:       typ,
		EntityType: entity,
		EntityID:   entityID,
		ListID:     listID,
		At:         at.UTC(),
	}
}
