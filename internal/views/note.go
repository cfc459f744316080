package views

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yungbote/tasknotes-backend/internal/domain"
)

const (
	PreviewLength      = 100
	PreviewPlaceholder = "No content yet."
	previewEllipsis    = "..."
)

type NoteView struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Preview   string    `json:"preview"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromNote(n *domain.Note) NoteView {
	if n == nil {
		return NoteView{}
	}
	return NoteView{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		Preview:   Preview(n.Body),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func FromNotes(in []*domain.Note) []NoteView {
	out := make([]NoteView, 0, len(in))
	for _, n := range in {
		if n == nil {
			continue
		}
		out = append(out, FromNote(n))
	}
	return out
}

// Preview returns the first PreviewLength characters of body, with an ellipsis when truncated.
func Preview(body string) string {
	if strings.TrimSpace(body) == "" {
		return PreviewPlaceholder
	}
	if utf8.RuneCountInString(body) <= PreviewLength {
		return body
	}
	return string([]rune(body)[:PreviewLength]) + previewEllipsis
}
