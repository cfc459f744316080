package domain

import "time"

// TodoList is the aggregate root owning a set of Todo rows.
// Timestamps are written explicitly by the aggregate's clock, never by gorm.
type TodoList struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Todos     []Todo    `gorm:"foreignKey:TodoListID" json:"todos,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false;index" json:"updated_at"`
}

func (TodoList) TableName() string { return "todo_lists" }

type Todo struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	TodoListID  uint64    `gorm:"column:todo_list_id;not null;index" json:"todo_list_id"`
	Description string    `gorm:"column:description;type:varchar(200);not null" json:"description"`
	Completed   bool      `gorm:"column:completed;not null;default:false" json:"completed"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false" json:"updated_at"`
}

func (Todo) TableName() string { return "todos" }
