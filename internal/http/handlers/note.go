package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/tasknotes-backend/internal/http/response"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
	"github.com/yungbote/tasknotes-backend/internal/services"
)

type NoteHandler struct {
	log   *logger.Logger
	notes services.NoteService
}

func NewNoteHandler(log *logger.Logger, notes services.NoteService) *NoteHandler {
	return &NoteHandler{
		log:   log.With("handler", "NoteHandler"),
		notes: notes,
	}
}

type noteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (r noteRequest) input() services.NoteInput {
	return services.NoteInput{Title: r.Title, Body: r.Body}
}

// GET /api/notes
func (h *NoteHandler) ListNotes(c *gin.Context) {
	notes, err := h.notes.ListAllNotes(c.Request.Context())
	if err != nil {
		h.log.Error("ListNotes failed", "error", err)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"notes": notes})
}

// POST /api/notes
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondBadRequest(c, "invalid_request", err)
		return
	}
	note, err := h.notes.CreateNote(c.Request.Context(), req.input())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"note": note})
}

// GET /api/notes/:id
func (h *NoteHandler) GetNote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	note, found, err := h.notes.GetNote(c.Request.Context(), id)
	if err != nil {
		h.log.Error("GetNote failed", "error", err, "note_id", id)
		response.RespondServiceError(c, err)
		return
	}
	if !found {
		response.RespondNotFound(c, "note")
		return
	}
	response.RespondOK(c, gin.H{"note": note})
}

// PUT /api/notes/:id
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondBadRequest(c, "invalid_request", err)
		return
	}
	note, found, err := h.notes.UpdateNote(c.Request.Context(), id, req.input())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if !found {
		response.RespondNotFound(c, "note")
		return
	}
	response.RespondOK(c, gin.H{"note": note})
}

// DELETE /api/notes/:id
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	existed, err := h.notes.DeleteNote(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if !existed {
		response.RespondNotFound(c, "note")
		return
	}
	response.RespondNoContent(c)
}
