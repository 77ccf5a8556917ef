package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"boardgames-backend/internal/domains/user"
	"boardgames-backend/internal/shared/response"
)

type UserHandler struct {
	service user.UserService
}

func NewUserHandler(service user.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, 0)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	resp, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.respondError(c, err, 0)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetByID handles GET /users/:id.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, id)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, id)
		return
	}

	response.NoContent(c)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return 0, false
	}
	return id, true
}

func (h *UserHandler) respondError(c *gin.Context, err error, id int64) {
	var ve *user.ValidationError
	switch {
	case errors.As(err, &ve):
		response.ValidationFailed(c, ve.Fields)
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, fmt.Sprintf("User with ID %d not found", id))
	default:
		log.Error().Err(err).
			Str("request_id", c.GetString("request_id")).
			Int64("user_id", id).
			Msg("user request failed")

		if user.GetHTTPStatusCode(err) == http.StatusServiceUnavailable {
			response.ServiceUnavailable(c, "service is busy, try again later")
			return
		}
		response.InternalServerError(c, "internal server error")
	}
}
