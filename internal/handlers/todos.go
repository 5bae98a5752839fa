package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hrithikcode/TO-DO-LIST/internal/middleware"
	"github.com/hrithikcode/TO-DO-LIST/internal/models"
	"github.com/hrithikcode/TO-DO-LIST/internal/repository"
	"github.com/hrithikcode/TO-DO-LIST/internal/service"
)

type todoResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UserID      int64     `json:"user_id"`
}

func toTodoResponse(todo models.Todo) todoResponse {
	return todoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
		UserID:      todo.UserID,
	}
}

func (h HandlerSet) ListTodos(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(models.User)

	todos, err := h.todos.List(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list todos failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	resp := make([]todoResponse, 0, len(todos))
	for _, todo := range todos {
		resp = append(resp, toTodoResponse(todo))
	}
	c.JSON(http.StatusOK, resp)
}

type createTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (h HandlerSet) CreateTodo(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(models.User)

	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	todo, emailSent, err := h.todos.Create(c.Request.Context(), user, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("create todo failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"todo":       toTodoResponse(todo),
		"email_sent": emailSent,
	})
}

type updateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (h HandlerSet) UpdateTodo(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(models.User)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	todo, err := h.todos.Update(c.Request.Context(), user.ID, id, service.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		h.log.Error().Err(err).Msg("update todo failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	c.JSON(http.StatusOK, toTodoResponse(todo))
}

func (h HandlerSet) DeleteTodo(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(models.User)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	if err := h.todos.Delete(c.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		h.log.Error().Err(err).Msg("delete todo failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}

func (h HandlerSet) EmailSummary(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(models.User)

	count, sent, err := h.todos.EmailSummary(c.Request.Context(), user)
	if err != nil {
		h.log.Error().Err(err).Msg("email summary failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	if !sent {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send email",
			"message": "Please check email configuration and try again",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "Email summary sent successfully",
		"email":              user.Email,
		"active_tasks_count": count,
		"sent_at":            time.Now().Format(time.RFC3339),
	})
}
