package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/tasknotes-backend/internal/http/response"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
	"github.com/yungbote/tasknotes-backend/internal/services"
)

type TodoListHandler struct {
	log   *logger.Logger
	todos services.TodoService
}

func NewTodoListHandler(log *logger.Logger, todos services.TodoService) *TodoListHandler {
	return &TodoListHandler{
		log:   log.With("handler", "TodoListHandler"),
		todos: todos,
	}
}

type todoListRequest struct {
	Name string `json:"name"`
}

type todoRequest struct {
	Description string `json:"description"`
}

// GET /api/todo-lists
func (h *TodoListHandler) ListTodoLists(c *gin.Context) {
	lists, err := h.todos.ListAllLists(c.Request.Context())
	if err != nil {
		h.log.Error("ListTodoLists failed", "error", err)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"todoLists": lists})
}

// POST /api/todo-lists
func (h *TodoListHandler) CreateTodoList(c *gin.Context) {
	var req todoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondBadRequest(c, "invalid_request", err)
		return
	}
	list, err := h.todos.CreateList(c.Request.Context(), req.Name)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"todoList": list})
}

// GET /api/todo-lists/:listId
func (h *TodoListHandler) GetTodoList(c *gin.Context) {
	listID, ok := pathID(c, "listId")
	if !ok {
		return
	}
	list, found, err := h.todos.GetList(c.Request.Context(), listID)
	if err != nil {
		h.log.Error("GetTodoList failed", "error", err, "list_id", listID)
		response.RespondServiceError(c, err)
		return
	}
	if !found {
		response.RespondNotFound(c, "todo list")
		return
	}
	response.RespondOK(c, gin.H{"todoList": list})
}

// PUT /api/todo-lists/:listId
func (h *TodoListHandler) RenameTodoList(c *gin.Context) {
	listID, ok := pathID(c, "listId")
	if !ok {
		return
	}
	var req todoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondBadRequest(c, "invalid_request", err)
		return
	}
	list, found, err := h.todos.RenameList(c.Request.Context(), listID, req.Name)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if !found {
		response.RespondNotFound(c, "todo list")
		return
	}
	response.RespondOK(c, gin.H{"todoList": list})
}

// DELETE /api/todo-lists/:listId
func (h *TodoListHandler) DeleteTodoList(c *gin.Context) {
	listID, ok := pathID(c, "listId")
	if !ok {
		return
	}
	existed, err := h.todos.DeleteList(c.Request.Context(), listID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if !existed {
		response.RespondNotFound(c, "todo list")
		return
	}
	response.RespondNoContent(c)
}

// GET /api/todo-lists/:listId/todos
func (h *TodoListHandler) ListTodos(c *gin.Context) {
	listID, ok := pathID(c, "listId")
	if !ok {
		return
	}
	completed, ok := completedFilter(c)
	if !ok {
		return
	}
	todos, found, err := h.todos.ListTodos(c.Request.Context(), listID, completed)
	if err != nil {
		h.log.Error("ListTodos failed", "error", err, "list_id", listID)
		response.RespondServiceError(c, err)
		return
	}
	if !found {
		response.RespondNotFound(c, "todo list")
		return
	}
	response.RespondOK(c, gin.H{"todos": todos})
}

// POST /api/todo-lists/:listId/todos
func (h *TodoListHandler) CreateTodo(c *gin.Context) {
	listID, ok := pathID(c, "listId")
	if !ok {
		return
	}
	var req todoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondBadRequest(c, "invalid_request", err)
		return
	}
	todo, found, err := h.todos.CreateTodo(c.Request.Context(), listID, req.Description)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if !found {
		response.RespondNotFound(c, "todo list")
		return
	}
	response.RespondCreated(c, gin.H{"todo": todo})
}

// GET /api/todo-lists/:listId/todos/:todoId
func (h *TodoListHandler) GetTodo(c *gin.Context) {
	listID, todoID, ok := todoPath(c)
	if !ok {
		return
	}
	todo, found, err := h.todos.GetTodo(c.Request.Context(), listID, todoID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if !found {
		response.RespondNotFound(c, "todo")
		return
	}
	response.RespondOK(c, gin.H{"todo": todo})
}

// PUT /api/todo-lists/:listId/todos/:todoId
func (h *TodoListHandler) UpdateTodo(c *gin.Context) {
	listID, todoID, ok := todoPath(c)
	if !ok {
		return
	}
	var req todoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondBadRequest(c, "invalid_request", err)
		return
	}
	todo, found, err := h.todos.UpdateTodo(c.Request.Context(), listID, todoID, req.Description)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if !found {
		response.RespondNotFound(c, "todo")
		return
	}
	response.RespondOK(c, gin.H{"todo": todo})
}

// PATCH /api/todo-lists/:listId/todos/:todoId/complete
func (h *TodoListHandler) MarkComplete(c *gin.Context) {
	h.setCompletion(c, true)
}

// PATCH /api/todo-lists/:listId/todos/:todoId/incomplete
func (h *TodoListHandler) MarkIncomplete(c *gin.Context) {
	h.setCompletion(c, false)
}

func (h *TodoListHandler) setCompletion(c *gin.Context, completed bool) {
	listID, todoID, ok := todoPath(c)
	if !ok {
		return
	}
	todo, found, err := h.todos.SetCompletion(c.Request.Context(), listID, todoID, completed)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if !found {
		response.RespondNotFound(c, "todo")
		return
	}
	response.RespondOK(c, gin.H{"todo": todo})
}

// DELETE /api/todo-lists/:listId/todos/:todoId
func (h *TodoListHandler) DeleteTodo(c *gin.Context) {
	listID, todoID, ok := todoPath(c)
	if !ok {
		return
	}
	existed, err := h.todos.DeleteTodo(c.Request.Context(), listID, todoID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if !existed {
		response.RespondNotFound(c, "todo")
		return
	}
	response.RespondNoContent(c)
}

func todoPath(c *gin.Context) (uint64, uint64, bool) {
	listID, ok := pathID(c, "listId")
	if !ok {
		return 0, 0, false
	}
	todoID, ok := pathID(c, "todoId")
	if !ok {
		return 0, 0, false
	}
	return listID, todoID, true
}
