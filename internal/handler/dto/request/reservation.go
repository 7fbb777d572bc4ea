package request

import (
	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	BookID     uuid.UUID `json:"bookId" binding:"required"`
	DaysToKeep *int      `json:"daysToKeep,omitempty"`
}
