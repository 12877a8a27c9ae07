package reservations

import (
	"errors"
	"net/http"

	"github.com/gasparellodev/mono-repo2/internal/arenas"
	"github.com/gasparellodev/mono-repo2/internal/courts"
	"github.com/gasparellodev/mono-repo2/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) Create(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	reservation, err := c.service.Create(ctx.Request.Context(), &req, userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrSlotAlreadyReserved):
			// Conflict class, distinct from the validation failures.
			statusCode = http.StatusUnprocessableEntity
		case errors.Is(err, courts.ErrCourtNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, ErrScheduleNotConfigured),
			errors.Is(err, ErrPastDate),
			errors.Is(err, ErrArenaClosedOnDate),
			errors.Is(err, ErrOutsideBusinessHours),
			errors.Is(err, ErrLunchWindow),
			errors.Is(err, ErrInvalidDate):
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to create reservation", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Reservation created successfully", reservation, nil)
}

func (c *Controller) FindAllInDay(ctx *gin.Context) {
	var query FindAllInDayQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	results, err := c.service.FindAllInDay(ctx.Request.Context(), &query)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrInvalidSort) {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get day availability", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Day availability retrieved successfully", results, nil)
}

func (c *Controller) FindAllInMonth(ctx *gin.Context) {
	var query FindAllInMonthQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	results, err := c.service.FindAllInMonth(ctx.Request.Context(), &query)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, arenas.ErrArenaNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get month availability", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Month availability retrieved successfully", results, nil)
}

func (c *Controller) FindByUser(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	results, err := c.service.FindByUser(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get reservations", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservations retrieved successfully", results, nil)
}

func (c *Controller) Cancel(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	reservationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid reservation ID", nil, err.Error())
		return
	}

	if err := c.service.Cancel(ctx.Request.Context(), reservationID, userID); err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrReservationNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, ErrNotReservationOwner):
			statusCode = http.StatusForbidden
		case errors.Is(err, ErrAlreadyCancelled):
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to cancel reservation", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservation cancelled successfully", nil, nil)
}
