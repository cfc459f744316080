package todo

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/tasknotes-backend/internal/domain"
	"github.com/yungbote/tasknotes-backend/internal/platform/dbctx"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
)

type TodoListRepo interface {
	Create(dbc dbctx.Context, rows []*domain.TodoList) ([]*domain.TodoList, error)
	GetByID(dbc dbctx.Context, id uint64) (*domain.TodoList, error)
	GetByIDWithTodos(dbc dbctx.Context, id uint64) (*domain.TodoList, error)
	ListAllWithTodos(dbc dbctx.Context) ([]*domain.TodoList, error)
	LockByID(dbc dbctx.Context, id uint64) (*domain.TodoList, error)
	Rename(dbc dbctx.Context, id uint64, name string, at time.Time) error
	Touch(dbc dbctx.Context, id uint64, at time.Time) error
	Delete(dbc dbctx.Context, id uint64) (int64, error)
}

type todoListRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTodoListRepo(db *gorm.DB, baseLog *logger.Logger) TodoListRepo {
	return &todoListRepo{db: db, log: baseLog.With("repo", "TodoListRepo")}
}

func (r *todoListRepo) Create(dbc dbctx.Context, rows []*domain.TodoList) ([]*domain.TodoList, error) {
	if len(rows) == 0 {
		return []*domain.TodoList{}, nil
	}
	if err := dbc.DB(r.db).Omit("Todos").Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *todoListRepo) GetByID(dbc dbctx.Context, id uint64) (*domain.TodoList, error) {
	if id == 0 {
		return nil, nil
	}
	var out []*domain.TodoList
	if err := dbc.DB(r.db).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *todoListRepo) GetByIDWithTodos(dbc dbctx.Context, id uint64) (*domain.TodoList, error) {
	if id == 0 {
		return nil, nil
	}
	var out []*domain.TodoList
	if err := dbc.DB(r.db).
		Preload("Todos", orderByID).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *todoListRepo) ListAllWithTodos(dbc dbctx.Context) ([]*domain.TodoList, error) {
	var out []*domain.TodoList
	if err := dbc.DB(r.db).
		Preload("Todos", orderByID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// LockByID loads the list row FOR UPDATE; it must run inside a transaction.
// Returns (nil, nil) when the list does not exist.
func (r *todoListRepo) LockByID(dbc dbctx.Context, id uint64) (*domain.TodoList, error) {
	if id == 0 {
		return nil, nil
	}
	if dbc.Tx == nil {
		return nil, fmt.Errorf("LockByID requires dbc.Tx")
	}
	var out []*domain.TodoList
	if err := dbc.DB(nil).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *todoListRepo) Rename(dbc dbctx.Context, id uint64, name string, at time.Time) error {
	if id == 0 {
		return fmt.Errorf("missing id")
	}
	return dbc.DB(r.db).
		Model(&domain.TodoList{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       name,
			"updated_at": at,
		}).Error
}

// Touch bumps updated_at without changing any other column.
func (r *todoListRepo) Touch(dbc dbctx.Context, id uint64, at time.Time) error {
	if id == 0 {
		return fmt.Errorf("missing id")
	}
	return dbc.DB(r.db).
		Model(&domain.TodoList{}).
		Where("id = ?", id).
		Update("updated_at", at).Error
}

func (r *todoListRepo) Delete(dbc dbctx.Context, id uint64) (int64, error) {
	if id == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Where("id = ?", id).
		Delete(&domain.TodoList{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
