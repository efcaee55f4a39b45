package todos

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codetern/gotasks/internal/pkg/pagination"
	"github.com/codetern/gotasks/internal/pkg/response"
	apperrors "github.com/codetern/gotasks/pkg/errors"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create godoc
// @Summary Create a new todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTodoRequest true "Todo creation data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /todos [post]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateTodo(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	todo := &Todo{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		DueTime:     req.DueTime,
		Category:    req.Category,
		Tags:        req.Tags,
		Subtasks:    req.Subtasks,
		Attachments: req.Attachments,
		Reminder:    req.Reminder,
		Notes:       req.Notes,
	}

	// Defaults
	if todo.Priority == "" {
		todo.Priority = PriorityMedium
	}
	if todo.Category == "" {
		todo.Category = CategoryOther
	}
	if todo.Tags == nil {
		todo.Tags = []string{}
	}
	if todo.Subtasks == nil {
		todo.Subtasks = []Subtask{}
	}
	if todo.Attachments == nil {
		todo.Attachments = []Attachment{}
	}

	if err := h.repo.Create(c.Request.Context(), todo); err != nil {
		response.DatabaseError(c, "Failed to create todo")
		return
	}

	todo.Decorate(time.Now())
	response.Created(c, todo, "Todo created successfully")
}

// Get godoc
// @Summary Get a todo by ID
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /todos/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("userID")

	todo, err := h.repo.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Todo not found")
			return
		}
		response.DatabaseError(c, "Failed to get todo")
		return
	}

	todo.Decorate(time.Now())
	response.Success(c, todo)
}

// Update godoc
// @Summary Update a todo
// @Description Partially update a todo; only provided fields change. If
// @Description every subtask ends up complete, the todo is auto-completed.
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo ID"
// @Param request body UpdateTodoRequest true "Fields to update"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /todos/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("userID")

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdateTodo(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	todo, err := h.repo.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Todo not found")
			return
		}
		response.DatabaseError(c, "Failed to get todo")
		return
	}

	todo.ApplyUpdate(&req)

	if err := h.repo.Save(c.Request.Context(), todo); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Todo not found")
			return
		}
		response.DatabaseError(c, "Failed to update todo")
		return
	}

	todo.Decorate(time.Now())
	response.Success(c, todo, "Todo updated successfully")
}

// Toggle godoc
// @Summary Toggle todo completion
// @Description Flip completion. Completing forces all subtasks complete;
// @Description reopening leaves subtasks unchanged.
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /todos/{id}/toggle [patch]
func (h *Handler) Toggle(c *gin.Context) {
	userID := c.GetString("userID")

	todo, err := h.repo.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Todo not found")
			return
		}
		response.DatabaseError(c, "Failed to get todo")
		return
	}

	todo.ToggleCompletion()

	if err := h.repo.Save(c.Request.Context(), todo); err != nil {
		response.DatabaseError(c, "Failed to update todo")
		return
	}

	state := "pending"
	if todo.IsCompleted {
		state = "completed"
	}

	todo.Decorate(time.Now())
	response.Success(c, todo, fmt.Sprintf("Todo marked as %s", state))
}

// Delete godoc
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /todos/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.repo.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Todo not found")
			return
		}
		response.DatabaseError(c, "Failed to delete todo")
		return
	}

	response.Success(c, nil, "Todo deleted successfully")
}

// DeleteMany godoc
// @Summary Bulk delete todos
// @Description Deletes the caller-owned todos among the given ids and
// @Description reports the count actually removed.
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeleteManyRequest true "Ids to delete"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /todos [delete]
func (h *Handler) DeleteMany(c *gin.Context) {
	userID := c.GetString("userID")

	var req DeleteManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if req.IDs == nil {
		response.ValidationFailed(c, "please provide array of ids")
		return
	}

	deleted, err := h.repo.DeleteMany(c.Request.Context(), req.IDs, userID)
	if err != nil {
		response.DatabaseError(c, "Failed to delete todos")
		return
	}

	response.Success(c,
		map[string]int64{"deleted": deleted},
		fmt.Sprintf("%d todos deleted successfully", deleted))
}

// List godoc
// @Summary List todos
// @Description List todos with filters, sorting and pagination, plus a
// @Description whole-collection stats snapshot for the owner.
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param isCompleted query bool false "Filter by completion"
// @Param priority query string false "Filter by priority" Enums(low, medium, high)
// @Param category query string false "Filter by category"
// @Param search query string false "Substring match on title or description"
// @Param sortBy query string false "Sort field" Enums(createdAt, updatedAt, dueDate, priority, title)
// @Param order query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /todos [get]
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("userID")

	q := parseListQuery(c)

	todos, total, err := h.repo.List(c.Request.Context(), userID, q)
	if err != nil {
		response.DatabaseError(c, "Failed to get todos")
		return
	}

	stats, err := h.repo.ListStats(c.Request.Context(), userID)
	if err != nil {
		response.DatabaseError(c, "Failed to compute stats")
		return
	}

	now := time.Now()
	for i := range todos {
		todos[i].Decorate(now)
	}

	page := pagination.New(q.Page, q.Limit, total)

	response.Success(c, ListResult{
		Items: todos,
		Count: len(todos),
		Total: total,
		Page:  page.Page,
		Pages: page.Pages,
		Stats: *stats,
	})
}

// Dashboard godoc
// @Summary Dashboard statistics
// @Description Grouped counts over the caller's todos: overview, by
// @Description priority, by category, due today and overdue.
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /todos/stats/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	userID := c.GetString("userID")

	stats, err := h.repo.Dashboard(c.Request.Context(), userID, time.Now())
	if err != nil {
		response.DatabaseError(c, "Failed to compute dashboard stats")
		return
	}

	response.Success(c, stats)
}

func parseListQuery(c *gin.Context) *ListQuery {
	q := &ListQuery{
		Priority: c.Query("priority"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		SortBy:   c.DefaultQuery("sortBy", "createdAt"),
		Order:    c.DefaultQuery("order", "desc"),
	}

	if completedStr := c.Query("isCompleted"); completedStr != "" {
		if val, err := strconv.ParseBool(completedStr); err == nil {
			q.IsCompleted = &val
		}
	}

	q.Page, q.Limit = pagination.FromRequest(c.Query("page"), c.Query("limit"))
	return q
}
