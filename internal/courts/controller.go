package courts

import (
	"errors"
	"net/http"

	"github.com/gasparellodev/mono-repo2/internal/arenas"
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
	var req CreateCourtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	court, err := c.service.Create(ctx.Request.Context(), &req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, arenas.ErrArenaNotFound),
			errors.Is(err, ErrInvalidSportType),
			errors.Is(err, ErrInvalidCourtFloor),
			errors.Is(err, ErrInvalidHourValue):
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to create court", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Court created successfully", court, nil)
}

func (c *Controller) GetByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid court ID", nil, err.Error())
		return
	}

	court, err := c.service.FindByID(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrCourtNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get court", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Court retrieved successfully", court, nil)
}

func (c *Controller) GetByArena(ctx *gin.Context) {
	arenaID, err := uuid.Parse(ctx.Param("arenaId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid arena ID", nil, err.Error())
		return
	}

	courts, err := c.service.FindByArena(ctx.Request.Context(), arenaID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get courts", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Courts retrieved successfully", courts, nil)
}
