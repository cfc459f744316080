package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/tasknotes-backend/internal/data/aggregates"
	"github.com/yungbote/tasknotes-backend/internal/data/repos"
	"github.com/yungbote/tasknotes-backend/internal/observability"
	"github.com/yungbote/tasknotes-backend/internal/platform/clock"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
	"github.com/yungbote/tasknotes-backend/internal/realtime/bus"
	"github.com/yungbote/tasknotes-backend/internal/services"
)

type Services struct {
	Todo      services.TodoService
	Note      services.NoteService
	Dashboard services.DashboardService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet repos.Set, eventBus bus.Bus, metrics *observability.Metrics, clk clock.Clock) Services {
	log.Info("Wiring services...")

	base := aggregates.BaseDeps{
		DB:    db,
		Log:   log,
		Hooks: aggregates.NewObservabilityHooks(metrics, log),
		Clock: clk,
	}
	todoAgg := aggregates.NewTodoListAggregate(aggregates.TodoListAggregateDeps{
		Base:  base,
		Lists: reposet.TodoList,
		Todos: reposet.Todo,
	})
	noteAgg := aggregates.NewNoteAggregate(aggregates.NoteAggregateDeps{
		Base:  base,
		Notes: reposet.Note,
	})
	notify := services.NewChangeNotifier(&services.BusEmitter{Bus: eventBus, Log: log, Metrics: metrics})

	return Services{
		Todo:      services.NewTodoService(log, todoAgg, reposet.TodoList, reposet.Todo, notify, clk),
		Note:      services.NewNoteService(log, noteAgg, reposet.Note, notify, clk),
		Dashboard: services.NewDashboardService(log, reposet.TodoList, reposet.Note, clk),
	}
}
