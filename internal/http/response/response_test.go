package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	domainagg "github.com/yungbote/tasknotes-backend/internal/domain/aggregates"
)

func serve(t *testing.T, err error) (int, ErrorEnvelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	RespondServiceError(c, err)

	var env ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestRespondServiceErrorValidation(t *testing.T) {
	code, env := serve(t, domainagg.NewFieldError("Todo.CreateList", "name", "name is required"))
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "validation", env.Error.Code)
	require.Equal(t, "name", env.Error.Field)
	require.Equal(t, "name is required", env.Error.Message)
}

func TestRespondServiceErrorHidesInternalCause(t *testing.T) {
	code, env := serve(t, domainagg.Wrap(domainagg.CodeInternal, "Todo.DeleteList", errors.New("pq: password=hunter2")))
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, "internal", env.Error.Code)
	require.NotContains(t, env.Error.Message, "hunter2")

	code, env = serve(t, errors.New("plain"))
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, "internal error", env.Error.Message)
}

func TestRespondServiceErrorNotFoundAndRetry(t *testing.T) {
	code, _ := serve(t, domainagg.NewError(domainagg.CodeNotFound, "op", "missing", nil))
	require.Equal(t, http.StatusNotFound, code)

	code, env := serve(t, domainagg.NewError(domainagg.CodeRetryable, "op", "deadlock", nil))
	require.Equal(t, http.StatusServiceUnavailable, code)
	require.Equal(t, "retryable", env.Error.Code)
}
