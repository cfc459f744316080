package aggregates

import (
	"context"

	"github.com/yungbote/tasknotes-backend/internal/domain"
)

var NoteAggregateContract = Contract{
	Name:             "Note.NoteAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyTableRepoQueries,
	Notes:            "Owns note writes: title defaulting, the title length limit and clock-owned timestamps.",
}

// NoteAggregate owns note writes. A blank title becomes domain.DefaultNoteTitle on every write.
//
// Write method failures return *aggregates.Error with codes:
// CodeValidation, CodeNotFound, CodeRetryable, CodeInternal.
type NoteAggregate interface {
	Aggregate

	CreateNote(ctx context.Context, in NoteInput) (*domain.Note, error)
	UpdateNote(ctx context.Context, noteID uint64, in NoteInput) (*domain.Note, error)
	// DeleteNote reports false for an unknown note.
	DeleteNote(ctx context.Context, noteID uint64) (bool, error)
}

type NoteInput struct {
	Title string
	Body  string
}
