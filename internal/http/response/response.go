package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/tasknotes-backend/internal/domain/aggregates"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	writeError(c, status, code, msg, domainagg.FieldOf(err))
}

func writeError(c *gin.Context, status int, code, msg, field string) {
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
			Field:   field,
		},
	})
}

// RespondServiceError maps aggregate error codes to HTTP statuses.
// Internal failures never leak their cause to the client.
func RespondServiceError(c *gin.Context, err error) {
	code := domainagg.CodeOf(err)
	switch code {
	case domainagg.CodeValidation:
		writeError(c, http.StatusBadRequest, string(code), validationMessage(err), domainagg.FieldOf(err))
	case domainagg.CodeNotFound:
		writeError(c, http.StatusNotFound, string(code), "not found", "")
	case domainagg.CodeConflict, domainagg.CodePreconditionFailed:
		writeError(c, http.StatusConflict, string(code), "conflicting change, reload and retry", "")
	case domainagg.CodeRetryable:
		_ = c.Error(err)
		writeError(c, http.StatusServiceUnavailable, string(code), "temporarily unavailable, retry later", "")
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, string(domainagg.CodeInternal), "internal error", "")
	}
}

// validationMessage returns the bare constraint message, without the operation prefix.
func validationMessage(err error) string {
	var aggErr *domainagg.Error
	if errors.As(err, &aggErr) && aggErr.Message != "" {
		return aggErr.Message
	}
	return err.Error()
}

func RespondNotFound(c *gin.Context, what string) {
	writeError(c, http.StatusNotFound, string(domainagg.CodeNotFound), what+" not found", "")
}

func RespondBadRequest(c *gin.Context, code string, err error) {
	RespondError(c, http.StatusBadRequest, code, err)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
