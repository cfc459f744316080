package views

import (
	"fmt"
	"math"
	"time"

	"github.com/yungbote/tasknotes-backend/internal/domain"
)

type TodoView struct {
	ID          uint64    `json:"id"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TodoListView struct {
	ID                   uint64     `json:"id"`
	Name                 string     `json:"name"`
	Todos                []TodoView `json:"todos"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
	TotalTodos           int        `json:"totalTodos"`
	CompletedTodos       int        `json:"completedTodos"`
	ProgressString       string     `json:"progressString"`
	CompletionPercentage int        `json:"completionPercentage"`
}

func FromTodo(t *domain.Todo) TodoView {
	if t == nil {
		return TodoView{}
	}
	return TodoView{
		ID:          t.ID,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTodos(in []*domain.Todo) []TodoView {
	out := make([]TodoView, 0, len(in))
	for _, t := range in {
		if t == nil {
			continue
		}
		out = append(out, FromTodo(t))
	}
	return out
}

// FromTodoList converts a list with its preloaded todos.
func FromTodoList(l *domain.TodoList) TodoListView {
	if l == nil {
		return TodoListView{Todos: []TodoView{}}
	}
	todos := make([]TodoView, 0, len(l.Todos))
	for i := range l.Todos {
		todos = append(todos, FromTodo(&l.Todos[i]))
	}
	completed := CountCompleted(todos)
	return TodoListView{
		ID:                   l.ID,
		Name:                 l.Name,
		Todos:                todos,
		CreatedAt:            l.CreatedAt,
		UpdatedAt:            l.UpdatedAt,
		TotalTodos:           len(todos),
		CompletedTodos:       completed,
		ProgressString:       ProgressString(completed, len(todos)),
		CompletionPercentage: CompletionPercentage(completed, len(todos)),
	}
}

func CountCompleted(todos []TodoView) int {
	n := 0
	for _, t := range todos {
		if t.Completed {
			n++
		}
	}
	return n
}

func ProgressString(completed, total int) string {
	return fmt.Sprintf("%d/%d", completed, total)
}

// CompletionPercentage rounds half up; an empty list is 0%.
func CompletionPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(completed)/float64(total)*100 + 0.5))
}
