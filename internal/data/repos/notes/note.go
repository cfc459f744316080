package notes

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/tasknotes-backend/internal/domain"
	"github.com/yungbote/tasknotes-backend/internal/platform/dbctx"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
)

type NoteRepo interface {
	Create(dbc dbctx.Context, rows []*domain.Note) ([]*domain.Note, error)
	GetByID(dbc dbctx.Context, id uint64) (*domain.Note, error)
	LockByID(dbc dbctx.Context, id uint64) (*domain.Note, error)
	ListAll(dbc dbctx.Context) ([]*domain.Note, error)
	UpdateFields(dbc dbctx.Context, id uint64, updates map[string]interface{}) (int64, error)
	Delete(dbc dbctx.Context, id uint64) (int64, error)
}

type noteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNoteRepo(db *gorm.DB, baseLog *logger.Logger) NoteRepo {
	return &noteRepo{db: db, log: baseLog.With("repo", "NoteRepo")}
}

func (r *noteRepo) Create(dbc dbctx.Context, rows []*domain.Note) ([]*domain.Note, error) {
	if len(rows) == 0 {
		return []*domain.Note{}, nil
	}
	if err := dbc.DB(r.db).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *noteRepo) GetByID(dbc dbctx.Context, id uint64) (*domain.Note, error) {
	if id == 0 {
		return nil, nil
	}
	var out []*domain.Note
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

// LockByID loads the note row FOR UPDATE inside dbc.Tx. Returns (nil, nil) when absent.
func (r *noteRepo) LockByID(dbc dbctx.Context, id uint64) (*domain.Note, error) {
	if id == 0 {
		return nil, nil
	}
	if dbc.Tx == nil {
		return nil, fmt.Errorf("LockByID requires dbc.Tx")
	}
	var out []*domain.Note
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

func (r *noteRepo) ListAll(dbc dbctx.Context) ([]*domain.Note, error) {
	out := []*domain.Note{}
	if err := dbc.DB(r.db).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *noteRepo) UpdateFields(dbc dbctx.Context, id uint64, updates map[string]interface{}) (int64, error) {
	if id == 0 {
		return 0, fmt.Errorf("missing id")
	}
	if len(updates) == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Model(&domain.Note{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *noteRepo) Delete(dbc dbctx.Context, id uint64) (int64, error) {
	if id == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Where("id = ?", id).
		Delete(&domain.Note{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
