package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"boardgames-backend/internal/domains/boardgame"
	"boardgames-backend/internal/shared/response"
)

type BoardGameHandler struct {
	service boardgame.BoardGameService
}

func NewBoardGameHandler(service boardgame.BoardGameService) *BoardGameHandler {
	return &BoardGameHandler{service: service}
}

// Create handles POST /games.
func (h *BoardGameHandler) Create(c *gin.Context) {
	var req boardgame.CreateBoardGameRequest
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

// List handles GET /games. Bad pagination params fall back to defaults.
func (h *BoardGameHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	resp, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.respondError(c, err, 0)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetByID handles GET /games/:id.
func (h *BoardGameHandler) GetByID(c *gin.Context) {
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

// Update handles PATCH /games/:id.
func (h *BoardGameHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req boardgame.UpdateBoardGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, id)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete handles DELETE /games/:id.
func (h *BoardGameHandler) Delete(c *gin.Context) {
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
		response.BadRequest(c, "invalid game id")
		return 0, false
	}
	return id, true
}

// respondError maps domain errors to HTTP responses. Internal details stay
// in the log, never in the body.
func (h *BoardGameHandler) respondError(c *gin.Context, err error, id int64) {
	var ve *boardgame.ValidationError
	switch {
	case errors.As(err, &ve):
		response.ValidationFailed(c, ve.Fields)
	case errors.Is(err, boardgame.ErrGameNotFound):
		response.NotFound(c, fmt.Sprintf("Board game with ID %d not found", id))
	default:
		log.Error().Err(err).
			Str("request_id", c.GetString("request_id")).
			Int64("game_id", id).
			Msg("board game request failed")

		if boardgame.GetHTTPStatusCode(err) == http.StatusServiceUnavailable {
			response.ServiceUnavailable(c, "service is busy, try again later")
			return
		}
		response.InternalServerError(c, "internal server error")
	}
}
