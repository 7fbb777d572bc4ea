package api

import (
	"context"
	"net/http"
	"strconv"

	reqdto "library-backend/internal/handler/dto/request"
	resdto "library-backend/internal/handler/dto/response"
	"library-backend/internal/handler/httperr"
	"library-backend/internal/handler/middleware"
	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/queries"
	"library-backend/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(c commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{commands: c, queries: q}
}

// @Summary Reserve a book
// @Description Reserve one copy for the caller. daysToKeep defaults to the loan policy.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingActor, "Internal server error", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	id, err := h.commands.Reserve(c.Request.Context(), req.BookID, actor.Email, req.DaysToKeep)
	if err != nil {
		abortWithKind(c, err, "reserve")
		return
	}

	h.respondWithView(c, http.StatusCreated, actor, id)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}
	h.respondWithView(c, http.StatusOK, actor, id)
}

// @Summary List my reservations
// @Description Reservations of the authenticated caller, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/me [get]
func (h *ReservationHandler) Mine(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingActor, "Internal server error", nil)
		return
	}

	items, err := h.queries.ListByUser(c.Request.Context(), actor.Email)
	if err != nil {
		abortWithKind(c, err, "list own reservations")
		return
	}
	h.respondWithList(c, items, nil)
}

// @Summary List all reservations
// @Description Admin listing with keyset pagination, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListAll(c *gin.Context) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.queries.ListAll(c.Request.Context(), cursor, limit)
	if err != nil {
		abortWithKind(c, err, "list reservations")
		return
	}
	h.respondWithList(c, items, next)
}

// @Summary Collect a reservation
// @Description RESERVED to BORROWED
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/collect [post]
func (h *ReservationHandler) Collect(c *gin.Context) {
	h.transition(c, "collect", h.commands.Collect)
}

// @Summary Cancel a reservation
// @Description RESERVED to CANCELLED; the copy is released
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, "cancel", h.commands.Cancel)
}

// @Summary Return a book
// @Description BORROWED or OVERDUE to RETURNED; the copy is released
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/return [post]
func (h *ReservationHandler) Return(c *gin.Context) {
	h.transition(c, "return", h.commands.Return)
}

// @Summary Extend a loan
// @Description Push the expected return date of a BORROWED or OVERDUE loan
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/extend [post]
func (h *ReservationHandler) Extend(c *gin.Context) {
	h.transition(c, "extend", h.commands.Extend)
}

type transitionCommand func(ctx context.Context, id uuid.UUID, actor shared.Actor) error

func (h *ReservationHandler) transition(c *gin.Context, op string, cmd transitionCommand) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	if err := cmd(c.Request.Context(), id, actor); err != nil {
		abortWithKind(c, err, op)
		return
	}
	h.respondWithView(c, http.StatusOK, actor, id)
}

func (h *ReservationHandler) actorAndID(c *gin.Context) (shared.Actor, uuid.UUID, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingActor, "Internal server error", nil)
		return shared.Actor{}, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid reservation id")
		return shared.Actor{}, uuid.Nil, false
	}
	return actor, id, true
}

func (h *ReservationHandler) respondWithView(c *gin.Context, status int, actor shared.Actor, id uuid.UUID) {
	view, err := h.queries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithKind(c, err, "get reservation")
		return
	}

	resp, err := resdto.FromReservationView(view)
	if err != nil {
		abortWithKind(c, err, "map reservation")
		return
	}
	c.JSON(status, resp)
}

func (h *ReservationHandler) respondWithList(c *gin.Context, items []*queries.ReservationView, next *queries.Cursor) {
	resp, err := resdto.FromReservationList(items, next)
	if err != nil {
		abortWithKind(c, err, "map reservations")
		return
	}
	c.JSON(http.StatusOK, resp)
}
