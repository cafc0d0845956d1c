package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/calendar-api/internal/dto"
	apierrors "github.com/yukikurage/calendar-api/internal/errors"
	"github.com/yukikurage/calendar-api/internal/middleware"
	"github.com/yukikurage/calendar-api/internal/models"
	"github.com/yukikurage/calendar-api/internal/repository"
	"github.com/yukikurage/calendar-api/internal/services"
)

// TodoHandler coordinates todo-related HTTP handlers.
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// ListTodos returns all todos of the current user.
func (h *TodoHandler) ListTodos(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	todos, err := h.todoService.List(userID)
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TodoListResponse{Success: true, Todos: todos})
}

// CreateTodo creates a new todo owned by the current user.
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTodoRequest struct {
		Title       string              `json:"title"`
		Description string              `json:"description"`
		Priority    models.TodoPriority `json:"priority"`
		DueDate     *string             `json:"dueDate"`
	}

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	todo, err := h.todoService.Create(userID, services.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TodoResponse{
		Success: true,
		Message: "Todo created successfully",
		Todo:    todo,
	})
}

// GetTodo returns a single todo owned by the current user.
func (h *TodoHandler) GetTodo(c *gin.Context) {
	userID, todoID, ok := todoRequestIDs(c)
	if !ok {
		return
	}

	todo, err := h.todoService.Get(userID, todoID)
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TodoResponse{Success: true, Todo: todo})
}

// UpdateTodo applies a partial update to a todo owned by the current user.
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	userID, todoID, ok := todoRequestIDs(c)
	if !ok {
		return
	}

	type UpdateTodoRequest struct {
		Title       *string              `json:"title"`
		Description *string              `json:"description"`
		Priority    *models.TodoPriority `json:"priority"`
		Completed   *bool                `json:"completed"`
		DueDate     *string              `json:"dueDate"`
	}

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	todo, err := h.todoService.Update(userID, todoID, repository.TodoUpdate{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TodoResponse{
		Success: true,
		Message: "Todo updated successfully",
		Todo:    todo,
	})
}

// DeleteTodo removes a todo owned by the current user.
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	userID, todoID, ok := todoRequestIDs(c)
	if !ok {
		return
	}

	if err := h.todoService.Delete(userID, todoID); err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Todo deleted successfully",
	})
}

func todoRequestIDs(c *gin.Context) (userID, todoID uint64, ok bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return 0, 0, false
	}

	todoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid todo ID")
		return 0, 0, false
	}

	return userID, todoID, true
}

func respondTodoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTodoTitleRequired),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrInvalidDateFormat):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTodoNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
