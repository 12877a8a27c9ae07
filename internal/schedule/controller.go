package schedule

import (
	"errors"
	"net/http"

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
	var req CreateOpeningHoursRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	entry, err := c.service.Create(ctx.Request.Context(), &req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrDuplicateWeekday),
			errors.Is(err, ErrInvalidWeekday),
			errors.Is(err, ErrInvalidHours):
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to create opening hours", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Opening hours created successfully", entry, nil)
}

func (c *Controller) FindByArena(ctx *gin.Context) {
	arenaID, err := uuid.Parse(ctx.Param("arenaId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid arena ID", nil, err.Error())
		return
	}

	entries, err := c.service.FindByArena(ctx.Request.Context(), arenaID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get opening hours", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Opening hours retrieved successfully", entries, nil)
}
