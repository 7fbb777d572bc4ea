package api

import (
	"net/http"

	resdto "library-backend/internal/handler/dto/response"
	"library-backend/internal/handler/httperr"
	"library-backend/internal/handler/middleware"
	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	commands     commands.UserCommands
	queries      queries.UserQueries
	reservations queries.ReservationQueries
}

func NewUserHandler(c commands.UserCommands, q queries.UserQueries, reservations queries.ReservationQueries) *UserHandler {
	return &UserHandler{commands: c, queries: q, reservations: reservations}
}

// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserResponse
// @Failure 403 {object} map[string]string
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	items, err := h.queries.List(c.Request.Context())
	if err != nil {
		abortWithKind(c, err, "list users")
		return
	}

	resp, err := resdto.FromUserList(items)
	if err != nil {
		abortWithKind(c, err, "map users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": resp})
}

// @Summary Delete user
// @Description Admins cannot be deleted. Rejected while the user has active reservations.
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid user id")
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		abortWithKind(c, err, "delete user")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List user reservations
// @Description Readers may only list their own reservations
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id}/reservations [get]
func (h *UserHandler) ListReservations(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingActor, "Internal server error", nil)
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid user id")
		return
	}

	items, err := h.reservations.ListByUserID(c.Request.Context(), actor, userID)
	if err != nil {
		abortWithKind(c, err, "list user reservations")
		return
	}

	resp, err := resdto.FromReservationList(items, nil)
	if err != nil {
		abortWithKind(c, err, "map reservations")
		return
	}
	c.JSON(http.StatusOK, resp)
}
