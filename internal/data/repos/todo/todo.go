package todo

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/tasknotes-backend/internal/domain"
	"github.com/yungbote/tasknotes-backend/internal/platform/dbctx"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
)

type TodoRepo interface {
	Create(dbc dbctx.Context, rows []*domain.Todo) ([]*domain.Todo, error)
	GetByListAndID(dbc dbctx.Context, listID, todoID uint64) (*domain.Todo, error)
	ListByList(dbc dbctx.Context, listID uint64, completed *bool) ([]*domain.Todo, error)
	CountByList(dbc dbctx.Context, listID uint64) (int64, error)
	CountByListAndCompleted(dbc dbctx.Context, listID uint64, completed bool) (int64, error)
	UpdateFields(dbc dbctx.Context, listID, todoID uint64, updates map[string]interface{}) error
	Delete(dbc dbctx.Context, listID, todoID uint64) (int64, error)
	DeleteByList(dbc dbctx.Context, listID uint64) (int64, error)
}

type todoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTodoRepo(db *gorm.DB, baseLog *logger.Logger) TodoRepo {
	return &todoRepo{db: db, log: baseLog.With("repo", "TodoRepo")}
}

func (r *todoRepo) Create(dbc dbctx.Context, rows []*domain.Todo) ([]*domain.Todo, error) {
	if len(rows) == 0 {
		return []*domain.Todo{}, nil
	}
	for _, row := range rows {
		if row == nil || row.TodoListID == 0 {
			return nil, fmt.Errorf("todo requires todo_list_id")
		}
	}
	if err := dbc.DB(r.db).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByListAndID returns the todo only when it is owned by listID.
func (r *todoRepo) GetByListAndID(dbc dbctx.Context, listID, todoID uint64) (*domain.Todo, error) {
	if listID == 0 || todoID == 0 {
		return nil, nil
	}
	var out []*domain.Todo
	if err := dbc.DB(r.db).
		Where("id = ? AND todo_list_id = ?", todoID, listID).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

// ListByList returns todos in insertion order, optionally filtered by completion.
func (r *todoRepo) ListByList(dbc dbctx.Context, listID uint64, completed *bool) ([]*domain.Todo, error) {
	out := []*domain.Todo{}
	if listID == 0 {
		return out, nil
	}
	q := dbc.DB(r.db).Where("todo_list_id = ?", listID)
	if completed != nil {
		q = q.Where("completed = ?", *completed)
	}
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *todoRepo) CountByList(dbc dbctx.Context, listID uint64) (int64, error) {
	var count int64
	if err := dbc.DB(r.db).
		Model(&domain.Todo{}).
		Where("todo_list_id = ?", listID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *todoRepo) CountByListAndCompleted(dbc dbctx.Context, listID uint64, completed bool) (int64, error) {
	var count int64
	if err := dbc.DB(r.db).
		Model(&domain.Todo{}).
		Where("todo_list_id = ? AND completed = ?", listID, completed).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateFields applies updates to a todo owned by listID. todo_list_id is never updatable.
func (r *todoRepo) UpdateFields(dbc dbctx.Context, listID, todoID uint64, updates map[string]interface{}) error {
	if listID == 0 || todoID == 0 {
		return fmt.Errorf("missing list or todo id")
	}
	if len(updates) == 0 {
		return nil
	}
	if _, ok := updates["todo_list_id"]; ok {
		return fmt.Errorf("todo_list_id is immutable")
	}
	return dbc.DB(r.db).
		Model(&domain.Todo{}).
		Where("id = ? AND todo_list_id = ?", todoID, listID).
		Updates(updates).Error
}

func (r *todoRepo) Delete(dbc dbctx.Context, listID, todoID uint64) (int64, error) {
	if listID == 0 || todoID == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Where("id = ? AND todo_list_id = ?", todoID, listID).
		Delete(&domain.Todo{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *todoRepo) DeleteByList(dbc dbctx.Context, listID uint64) (int64, error) {
	if listID == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Where("todo_list_id = ?", listID).
		Delete(&domain.Todo{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
