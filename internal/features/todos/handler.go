// ================== internal/features/todos/handler.go ==================
package todos

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/azul/internal/pkg/logger"
	"github.com/xyz-asif/azul/internal/pkg/response"
	"github.com/xyz-asif/azul/internal/pkg/validator"
	apperrors "github.com/xyz-asif/azul/pkg/errors"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary List todos
// @Description Get all todos ordered by due date, latest first; todos without a due date come last
// @Tags todos
// @Produce json
// @Success 200 {array} TodoResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /todos [get]
func (h *Handler) List(c *gin.Context) {
	todos, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to get todos")
		return
	}

	response.Success(c, ToResponses(todos))
}

// Get godoc
// @Summary Get a todo by ID
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} TodoResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	todo, err := h.service.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to get todo")
		return
	}

	if todo == nil {
		response.NotFound(c, "Todo not found", "NOT_FOUND")
		return
	}

	response.Success(c, ToResponse(todo))
}

// Create godoc
// @Summary Create a new todo
// @Tags todos
// @Accept json
// @Produce json
// @Param request body TodoRequest true "Todo creation data"
// @Success 201 {object} TodoResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /todos [post]
func (h *Handler) Create(c *gin.Context) {
	req, ok := bindTodoRequest(c)
	if !ok {
		return
	}

	todo, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to create todo")
		return
	}

	response.Created(c, ToResponse(todo))
}

// Update godoc
// @Summary Replace a todo's editable fields
// @Description Overwrites title, description and due date; completion is left unchanged
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param request body TodoRequest true "Todo update data"
// @Success 200 {object} TodoResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	req, ok := bindTodoRequest(c)
	if !ok {
		return
	}

	todo, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err, "Failed to update todo")
		return
	}

	response.Success(c, ToResponse(todo))
}

// SetCompletion godoc
// @Summary Set completion state
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Param completed query bool true "New completion state"
// @Success 200 {object} TodoResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id}/complete [patch]
func (h *Handler) SetCompletion(c *gin.Context) {
	raw, present := c.GetQuery("completed")
	if !present {
		response.BadRequest(c, "Query parameter 'completed' is required", "INVALID_QUERY")
		return
	}
	completed, err := strconv.ParseBool(raw)
	if err != nil {
		response.BadRequest(c, "Query parameter 'completed' must be true or false", "INVALID_QUERY")
		return
	}

	todo, err := h.service.SetCompletion(c.Request.Context(), c.Param("id"), completed)
	if err != nil {
		h.fail(c, err, "Failed to update todo")
		return
	}

	response.Success(c, ToResponse(todo))
}

// Delete godoc
// @Summary Delete a todo
// @Tags todos
// @Param id path string true "Todo ID"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Failed to delete todo")
		return
	}

	response.NoContent(c)
}

func bindTodoRequest(c *gin.Context) (*TodoRequest, bool) {
	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if details, ok := validator.FieldErrors(err); ok {
			response.ValidationFailed(c, details)
			return nil, false
		}
		response.BindJSONError(c, err)
		return nil, false
	}
	return &req, true
}

func (h *Handler) fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		response.InvalidID(c, "Invalid todo ID")
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, "Todo not found", "NOT_FOUND")
	default:
		logger.Error(message, "path", c.Request.URL.Path, "err", err)
		response.DatabaseError(c, message)
	}
}
