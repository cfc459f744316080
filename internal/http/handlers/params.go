package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/tasknotes-backend/internal/http/response"
)

var errInvalidID = errors.New("id must be a positive integer")

// pathID parses a numeric route param, writing a 400 on failure.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id == 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_"+name, errInvalidID)
		return 0, false
	}
	return id, true
}

// completedFilter reads ?completed=true|false. An empty value means no filter.
func completedFilter(c *gin.Context) (*bool, bool) {
	raw := strings.ToLower(strings.TrimSpace(c.Query("completed")))
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_completed", errors.New("completed must be true or false"))
		return nil, false
	}
	return &v, true
}
