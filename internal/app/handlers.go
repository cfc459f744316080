package app

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/tasknotes-backend/internal/http"
	httpH "github.com/yungbote/tasknotes-backend/internal/http/handlers"
	"github.com/yungbote/tasknotes-backend/internal/observability"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
)

type Handlers struct {
	Health    *httpH.HealthHandler
	TodoList  *httpH.TodoListHandler
	Note      *httpH.NoteHandler
	Dashboard *httpH.DashboardHandler
}

func wireHandlers(db *gorm.DB, log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    httpH.NewHealthHandler(db),
		TodoList:  httpH.NewTodoListHandler(log, services.Todo),
		Note:      httpH.NewNoteHandler(log, services.Note),
		Dashboard: httpH.NewDashboardHandler(log, services.Dashboard),
	}
}

func wireRouter(cfg Config, log *logger.Logger, metrics *observability.Metrics, handlers Handlers) *gin.Engine {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	return http.NewRouter(http.RouterConfig{
		Log:              log,
		Metrics:          metrics,
		ServiceName:      serviceName,
		CORSOrigins:      cfg.CORSOrigins,
		HealthHandler:    handlers.Health,
		TodoListHandler:  handlers.TodoList,
		NoteHandler:      handlers.Note,
		DashboardHandler: handlers.Dashboard,
	})
}
