package arenas

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
	ownerID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateArenaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	arena, err := c.service.Create(ctx.Request.Context(), &req, ownerID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrOwnerTypeMismatch), errors.Is(err, ErrDuplicateBusinessID):
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to create arena", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Arena created successfully", arena, nil)
}

func (c *Controller) GetMine(ctx *gin.Context) {
	ownerID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	arena, err := c.service.GetByOwner(ctx.Request.Context(), ownerID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrArenaNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get arena", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Arena retrieved successfully", arena, nil)
}

func (c *Controller) Search(ctx *gin.Context) {
	var query LocationSearchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	results, err := c.service.SearchByLocation(ctx.Request.Context(), query.Latitude, query.Longitude, query.Input)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to search arenas", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Arenas retrieved successfully", results, nil)
}

func (c *Controller) Nearby(ctx *gin.Context) {
	var query LocationSearchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	results, err := c.service.GetNearby(ctx.Request.Context(), query.Latitude, query.Longitude)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get nearby arenas", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Nearby arenas retrieved successfully", results, nil)
}
