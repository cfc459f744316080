package aggregates_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/tasknotes-backend/internal/data/aggregates"
	aggtest "github.com/yungbote/tasknotes-backend/internal/data/aggregates/testutil"
	"github.com/yungbote/tasknotes-backend/internal/data/repos/testutil"
	"github.com/yungbote/tasknotes-backend/internal/data/repos/todo"
	"github.com/yungbote/tasknotes-backend/internal/domain"
	domainagg "github.com/yungbote/tasknotes-backend/internal/domain/aggregates"
	"github.com/yungbote/tasknotes-backend/internal/platform/clock"
	"github.com/yungbote/tasknotes-backend/internal/platform/dbctx"
)

var t0 = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	db    *gorm.DB
	clk   *clock.Fake
	hooks *aggtest.HooksRecorder
	lists todo.TodoListRepo
	todos todo.TodoRepo
	agg   domainagg.TodoListAggregate
}

func newFixture(t *testing.T, runner aggregates.TxRunner) fixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	f := fixture{
		db:    db,
		clk:   clock.NewFake(t0),
		hooks: &aggtest.HooksRecorder{},
		lists: todo.NewTodoListRepo(db, log),
		todos: todo.NewTodoRepo(db, log),
	}
	if runner == nil {
		runner = aggregates.NewGormTxRunner(db)
	}
	f.agg = aggregates.NewTodoListAggregate(aggregates.TodoListAggregateDeps{
		Base: aggregates.BaseDeps{
			DB:     db,
			Log:    log,
			Runner: runner,
			Hooks:  f.hooks,
			Clock:  f.clk,
		},
		Lists: f.lists,
		Todos: f.todos,
	})
	return f
}

func (f fixture) list(t *testing.T, id uint64) *domain.TodoList {
	t.Helper()
	l, err := f.lists.GetByIDWithTodos(dbctx.Context{Ctx: context.Background()}, id)
	if err != nil {
		t.Fatalf("GetByIDWithTodos: %v", err)
	}
	return l
}

func TestCreateListSetsTimestampsFromClock(t *testing.T) {
	f := newFixture(t, nil)
	l, err := f.agg.CreateList(context.Background(), domainagg.CreateListInput{Name: "Groceries"})
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}
	if l.ID == 0 || l.Name != "Groceries" {
		t.Fatalf("unexpected list: %+v", l)
	}
	if !l.CreatedAt.Equal(t0) || !l.UpdatedAt.Equal(l.CreatedAt) {
		t.Fatalf("timestamps: created=%v updated=%v", l.CreatedAt, l.UpdatedAt)
	}
	if l.Todos == nil || len(l.Todos) != 0 {
		t.Fatalf("expected empty todo set, got %+v", l.Todos)
	}
	if got := f.hooks.Statuses("Todo.CreateList"); len(got) != 1 || got[0] != "success" {
		t.Fatalf("hooks: %+v", f.hooks.Writes())
	}
}

func TestCreateListValidatesName(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	for _, name := range []string{"", "   ", strings.Repeat("a", 201)} {
		_, err := f.agg.CreateList(ctx, domainagg.CreateListInput{Name: name})
		if !domainagg.IsCode(err, domainagg.CodeValidation) {
			t.Fatalf("name %q: expected validation error, got %v", name, err)
		}
		if domainagg.FieldOf(err) != "name" {
			t.Fatalf("name %q: field=%q", name, domainagg.FieldOf(err))
		}
	}
	if _, err := f.agg.CreateList(ctx, domainagg.CreateListInput{Name: strings.Repeat("é", 200)}); err != nil {
		t.Fatalf("200 characters must be accepted: %v", err)
	}
}

func TestRenameListBumpsUpdatedAt(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	l, _ := f.agg.CreateList(ctx, domainagg.CreateListInput{Name: "Chores"})

	f.clk.Advance(time.Hour)
	renamed, err := f.agg.RenameList(ctx, domainagg.RenameListInput{ListID: l.ID, Name: "House"})
	if err != nil {
		t.Fatalf("RenameList: %v", err)
	}
	if renamed.Name != "House" || !renamed.UpdatedAt.Equal(t0.Add(time.Hour)) || !renamed.CreatedAt.Equal(t0) {
		t.Fatalf("unexpected renamed list: %+v", renamed)
	}

	_, err = f.agg.RenameList(ctx, domainagg.RenameListInput{ListID: 999, Name: "x"})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("unknown list: expected not_found, got %v", err)
	}
	_, err = f.agg.RenameList(ctx, domainagg.RenameListInput{ListID: l.ID, Name: " "})
	if !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("blank name: expected validation, got %v", err)
	}
}

func TestTodoMutationsBumpParent(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	l, _ := f.agg.CreateList(ctx, domainagg.CreateListInput{Name: "Groceries"})

	f.clk.Advance(time.Minute)
	milk, err := f.agg.CreateTodo(ctx, domainagg.CreateTodoInput{ListID: l.ID, Description: "Milk"})
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}
	if milk.Completed || milk.TodoListID != l.ID {
		t.Fatalf("unexpected todo: %+v", milk)
	}
	if got := f.list(t, l.ID).UpdatedAt; !got.Equal(t0.Add(time.Minute)) {
		t.Fatalf("after create: updated_at=%v", got)
	}

	f.clk.Advance(time.Minute)
	if _, err := f.agg.UpdateTodo(ctx, domainagg.UpdateTodoInput{ListID: l.ID, TodoID: milk.ID, Description: "Oat milk"}); err != nil {
		t.Fatalf("UpdateTodo: %v", err)
	}
	if got := f.list(t, l.ID).UpdatedAt; !got.Equal(t0.Add(2 * time.Minute)) {
		t.Fatalf("after update: updated_at=%v", got)
	}

	f.clk.Advance(time.Minute)
	done, err := f.agg.SetCompletion(ctx, domainagg.SetCompletionInput{ListID: l.ID, TodoID: milk.ID, Completed: true})
	if err != nil {
		t.Fatalf("SetCompletion: %v", err)
	}
	if !done.Completed || done.Description != "Oat milk" {
		t.Fatalf("unexpected todo after completion: %+v", done)
	}
	if got := f.list(t, l.ID).UpdatedAt; !got.Equal(t0.Add(3 * time.Minute)) {
		t.Fatalf("after toggle: updated_at=%v", got)
	}

	f.clk.Advance(time.Minute)
	existed, err := f.agg.DeleteTodo(ctx, domainagg.DeleteTodoInput{ListID: l.ID, TodoID: milk.ID})
	if err != nil || !existed {
		t.Fatalf("DeleteTodo: existed=%v err=%v", existed, err)
	}
	after := f.list(t, l.ID)
	if !after.UpdatedAt.Equal(t0.Add(4*time.Minute)) || !after.CreatedAt.Equal(t0) {
		t.Fatalf("after delete: %+v", after)
	}
	if len(after.Todos) != 0 {
		t.Fatalf("expected no todos, got %+v", after.Todos)
	}
}

func TestCreateTodoChecksListBeforeValidating(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.agg.CreateTodo(ctx, domainagg.CreateTodoInput{ListID: 42, Description: ""})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("unknown list: expected not_found, got %v", err)
	}

	l, _ := f.agg.CreateList(ctx, domainagg.CreateListInput{Name: "Groceries"})
	_, err = f.agg.CreateTodo(ctx, domainagg.CreateTodoInput{ListID: l.ID, Description: strings.Repeat("x", 201)})
	if !domainagg.IsCode(err, domainagg.CodeValidation) || domainagg.FieldOf(err) != "description" {
		t.Fatalf("long description: expected description validation, got %v", err)
	}
	if got := f.list(t, l.ID); !got.UpdatedAt.Equal(t0) || len(got.Todos) != 0 {
		t.Fatalf("failed create must not touch the list: %+v", got)
	}
}

func TestOwnershipIsChecked(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	a, _ := f.agg.CreateList(ctx, domainagg.CreateListInput{Name: "A"})
	b, _ := f.agg.CreateList(ctx, domainagg.CreateListInput{Name: "B"})
	item, _ := f.agg.CreateTodo(ctx, domainagg.CreateTodoInput{ListID: a.ID, Description: "Only in A"})

	_, err := f.agg.UpdateTodo(ctx, domainagg.UpdateTodoInput{ListID: b.ID, TodoID: item.ID, Description: "hijack"})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("UpdateTodo via foreign list: expected not_found, got %v", err)
	}
	_, err = f.agg.SetCompletion(ctx, domainagg.SetCompletionInput{ListID: b.ID, TodoID: item.ID, Completed: true})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("SetCompletion via foreign list: expected not_found, got %v", err)
	}
	existed, err := f.agg.DeleteTodo(ctx, domainagg.DeleteTodoInput{ListID: b.ID, TodoID: item.ID})
	if err != nil || existed {
		t.Fatalf("DeleteTodo via foreign list: existed=%v err=%v", existed, err)
	}
	if got := f.list(t, a.ID); len(got.Todos) != 1 || got.Todos[0].Description != "Only in A" || got.Todos[0].Completed {
		t.Fatalf("todo must be untouched: %+v", got.Todos)
	}
}

func TestDeleteListCascades(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	l, _ := f.agg.CreateList(ctx, domainagg.CreateListInput{Name: "Trip"})
	var first *domain.Todo
	for _, d := range []string{"Tickets", "Passport", "Charger"} {
		td, err := f.agg.CreateTodo(ctx, domainagg.CreateTodoInput{ListID: l.ID, Description: d})
		if err != nil {
			t.Fatalf("CreateTodo %s: %v", d, err)
		}
		if first == nil {
			first = td
		}
	}
	if _, err := f.agg.SetCompletion(ctx, domainagg.SetCompletionInput{ListID: l.ID, TodoID: first.ID, Completed: true}); err != nil {
		t.Fatalf("SetCompletion: %v", err)
	}

	res, err := f.agg.DeleteList(ctx, l.ID)
	if err != nil {
		t.Fatalf("DeleteList: %v", err)
	}
	if !res.Existed || res.TodosDeleted != 3 || res.CompletedDeleted != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	left, err := f.todos.CountByList(dbctx.Context{Ctx: ctx}, l.ID)
	if err != nil || left != 0 {
		t.Fatalf("orphaned todos: n=%d err=%v", left, err)
	}

	again, err := f.agg.DeleteList(ctx, l.ID)
	if err != nil || again.Existed {
		t.Fatalf("second DeleteList: %+v err=%v", again, err)
	}
}

// shortDeleteTodos reports one row fewer than it removed.
type shortDeleteTodos struct {
	todo.TodoRepo
}

func (r shortDeleteTodos) DeleteByList(dbc dbctx.Context, listID uint64) (int64, error) {
	n, err := r.TodoRepo.DeleteByList(dbc, listID)
	return n - 1, err
}

func TestDeleteListRejectsIncompleteCascade(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	lists := todo.NewTodoListRepo(db, log)
	todos := todo.NewTodoRepo(db, log)
	agg := aggregates.NewTodoListAggregate(aggregates.TodoListAggregateDeps{
		Base:  aggregates.BaseDeps{DB: db, Log: log, Runner: aggregates.NewGormTxRunner(db), Clock: clock.NewFake(t0)},
		Lists: lists,
		Todos: shortDeleteTodos{TodoRepo: todos},
	})
	ctx := context.Background()

	l, err := agg.CreateList(ctx, domainagg.CreateListInput{Name: "Chores"})
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}
	for _, d := range []string{"Dishes", "Laundry"} {
		if _, err := agg.CreateTodo(ctx, domainagg.CreateTodoInput{ListID: l.ID, Description: d}); err != nil {
			t.Fatalf("CreateTodo %s: %v", d, err)
		}
	}

	_, err = agg.DeleteList(ctx, l.ID)
	if !domainagg.IsCode(err, domainagg.CodeInvariantViolation) {
		t.Fatalf("expected invariant violation, got %v", err)
	}
	dbc := dbctx.Context{Ctx: ctx}
	left, err := todos.CountByList(dbc, l.ID)
	if err != nil || left != 2 {
		t.Fatalf("cascade must roll back: n=%d err=%v", left, err)
	}
	got, err := lists.GetByID(dbc, l.ID)
	if err != nil || got == nil {
		t.Fatalf("list must survive rollback: %+v err=%v", got, err)
	}
}

func TestFailedCommitRollsBackChildAndParent(t *testing.T) {
	db := testutil.DB(t)
	runner := &aggtest.InjectedTxRunner{DB: db}
	log := testutil.Logger(t)
	clk := clock.NewFake(t0)
	lists := todo.NewTodoListRepo(db, log)
	todos := todo.NewTodoRepo(db, log)
	agg := aggregates.NewTodoListAggregate(aggregates.TodoListAggregateDeps{
		Base:  aggregates.BaseDeps{DB: db, Log: log, Runner: runner, Clock: clk},
		Lists: lists,
		Todos: todos,
	})
	ctx := context.Background()

	l, err := agg.CreateList(ctx, domainagg.CreateListInput{Name: "Groceries"})
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}
	_, _ = agg.CreateTodo(ctx, domainagg.CreateTodoInput{ListID: l.ID, Description: "Milk"})

	runner.FailCommit = errors.New("commit lost")
	clk.Advance(time.Hour)
	if _, err := agg.CreateTodo(ctx, domainagg.CreateTodoInput{ListID: l.ID, Description: "Eggs"}); err == nil {
		t.Fatalf("expected commit failure")
	}
	if _, err := agg.DeleteList(ctx, l.ID); err == nil {
		t.Fatalf("expected commit failure on delete")
	}

	dbc := dbctx.Context{Ctx: ctx}
	got, err := lists.GetByIDWithTodos(dbc, l.ID)
	if err != nil || got == nil {
		t.Fatalf("list must survive rollback: %+v err=%v", got, err)
	}
	if len(got.Todos) != 1 || got.Todos[0].Description != "Milk" {
		t.Fatalf("rolled-back todo leaked: %+v", got.Todos)
	}
	if !got.UpdatedAt.Equal(t0) {
		t.Fatalf("rolled-back parent bump leaked: %v", got.UpdatedAt)
	}
	if runner.RollbackCalls != 2 {
		t.Fatalf("rollback calls: want=2 got=%d", runner.RollbackCalls)
	}
}
