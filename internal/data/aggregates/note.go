package aggregates

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/tasknotes-backend/internal/data/repos"
	"github.com/yungbote/tasknotes-backend/internal/domain"
	domainagg "github.com/yungbote/tasknotes-backend/internal/domain/aggregates"
	"github.com/yungbote/tasknotes-backend/internal/platform/dbctx"
)

type NoteAggregateDeps struct {
	Base BaseDeps

	Notes repos.NoteRepo
}

type noteAggregate struct {
	deps NoteAggregateDeps
}

func NewNoteAggregate(deps NoteAggregateDeps) domainagg.NoteAggregate {
	deps.Base = deps.Base.withDefaults()
	return &noteAggregate{deps: deps}
}

func (a *noteAggregate) Contract() domainagg.Contract {
	return domainagg.NoteAggregateContract
}

func (a *noteAggregate) configured(op string) error {
	if a.deps.Notes == nil {
		return domainagg.NewError(domainagg.CodeInternal, op, "note aggregate repo not configured", nil)
	}
	return nil
}

func noteTitle(op, title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return domain.DefaultNoteTitle, nil
	}
	if err := domainagg.RequireText(op, "title", title, domain.MaxTitleLength); err != nil {
		return "", err
	}
	return title, nil
}

func (a *noteAggregate) CreateNote(ctx context.Context, in domainagg.NoteInput) (*domain.Note, error) {
	const op = "Note.CreateNote"
	title, err := noteTitle(op, in.Title)
	if err != nil {
		return nil, err
	}
	if err := a.configured(op); err != nil {
		return nil, err
	}

	var out *domain.Note
	err = executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		now := a.deps.Base.Clock.Now()
		created, err := a.deps.Notes.Create(dbc, []*domain.Note{{
			Title:     title,
			Body:      in.Body,
			CreatedAt: now,
			UpdatedAt: now,
		}})
		if err != nil {
			return err
		}
		if len(created) != 1 || created[0].ID == 0 {
			return InvariantError("note insert returned no id")
		}
		out = created[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *noteAggregate) UpdateNote(ctx context.Context, noteID uint64, in domainagg.NoteInput) (*domain.Note, error) {
	const op = "Note.UpdateNote"
	title, err := noteTitle(op, in.Title)
	if err != nil {
		return nil, err
	}
	if err := a.configured(op); err != nil {
		return nil, err
	}

	var out *domain.Note
	err = executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		n, err := a.deps.Notes.LockByID(dbc, noteID)
		if err != nil {
			return err
		}
		if n == nil {
			return domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("note not found: %d", noteID), nil)
		}
		now := a.deps.Base.Clock.Now()
		affected, err := a.deps.Notes.UpdateFields(dbc, noteID, map[string]interface{}{
			"title":      title,
			"body":       in.Body,
			"updated_at": now,
		})
		if err != nil {
			return err
		}
		if err := RequireAffected(affected, "locked note was not updated"); err != nil {
			return err
		}
		n.Title = title
		n.Body = in.Body
		n.UpdatedAt = now
		out = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *noteAggregate) DeleteNote(ctx context.Context, noteID uint64) (bool, error) {
	const op = "Note.DeleteNote"
	if err := a.configured(op); err != nil {
		return false, err
	}

	existed := false
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		n, err := a.deps.Notes.Delete(dbc, noteID)
		if err != nil {
			return err
		}
		existed = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return existed, nil
}
