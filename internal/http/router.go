package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/tasknotes-backend/internal/http/handlers"
	httpMW "github.com/yungbote/tasknotes-backend/internal/http/middleware"
	"github.com/yungbote/tasknotes-backend/internal/observability"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	CORSOrigins []string

	TodoListHandler  *httpH.TodoListHandler
	NoteHandler      *httpH.NoteHandler
	DashboardHandler *httpH.DashboardHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	api := r.Group("/api")
	{
		// Todo lists
		if cfg.TodoListHandler != nil {
			h := cfg.TodoListHandler
			api.GET("/todo-lists", h.ListTodoLists)
			api.POST("/todo-lists", h.CreateTodoList)
			api.GET("/todo-lists/:listId", h.GetTodoList)
			api.PUT("/todo-lists/:listId", h.RenameTodoList)
			api.DELETE("/todo-lists/:listId", h.DeleteTodoList)

			api.GET("/todo-lists/:listId/todos", h.ListTodos)
			api.POST("/todo-lists/:listId/todos", h.CreateTodo)
			api.GET("/todo-lists/:listId/todos/:todoId", h.GetTodo)
			api.PUT("/todo-lists/:listId/todos/:todoId", h.UpdateTodo)
			api.DELETE("/todo-lists/:listId/todos/:todoId", h.DeleteTodo)
			api.PATCH("/todo-lists/:listId/todos/:todoId/complete", h.MarkComplete)
			api.PATCH("/todo-lists/:listId/todos/:todoId/incomplete", h.MarkIncomplete)
		}

		// Notes
		if cfg.NoteHandler != nil {
			api.GET("/notes", cfg.NoteHandler.ListNotes)
			api.POST("/notes", cfg.NoteHandler.CreateNote)
			api.GET("/notes/:id", cfg.NoteHandler.GetNote)
			api.PUT("/notes/:id", cfg.NoteHandler.UpdateNote)
			api.DELETE("/notes/:id", cfg.NoteHandler.DeleteNote)
		}

		// Dashboard
		if cfg.DashboardHandler != nil {
			api.GET("/dashboard", cfg.DashboardHandler.GetDashboard)
		}
	}

	return r
}
