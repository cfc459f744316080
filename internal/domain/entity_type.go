package domain

// EntityType tags the kind of record behind a dashboard item or change event.
type EntityType string

const (
	EntityTodoList EntityType = "TODOLIST"
	EntityTodo     EntityType = "TODO"
	EntityNote     EntityType = "NOTE"
)

const (
	MaxNameLength        = 200
	MaxDescriptionLength = 200
	MaxTitleLength       = 200

	DefaultNoteTitle = "New Note"
)
