package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/tasknotes-backend/internal/data/repos/notes"
	"github.com/yungbote/tasknotes-backend/internal/data/repos/todo"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
)

type TodoListRepo = todo.TodoListRepo
type TodoRepo = todo.TodoRepo

type NoteRepo = notes.NoteRepo

// Set groups every table repo the application wires.
type Set struct {
	TodoList TodoListRepo
	Todo     TodoRepo
	Note     NoteRepo
}

func NewSet(db *gorm.DB, log *logger.Logger) Set {
	log.Info("Wiring repos...")
	return Set{
		TodoList: todo.NewTodoListRepo(db, log),
		Todo:     todo.NewTodoRepo(db, log),
		Note:     notes.NewNoteRepo(db, log),
	}
}
