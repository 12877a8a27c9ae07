package users

import (
	"errors"
	"net/http"

	"github.com/gasparellodev/mono-repo2/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetMe(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	if userID == "" {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	user, err := c.service.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrUserNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get profile", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Profile retrieved successfully", toProfileResponse(user), nil)
}

func (c *Controller) UpdateMe(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	if userID == "" {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	user, err := c.service.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrUserNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, ErrFieldUnchanged), errors.Is(err, ErrInvalidField):
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update profile", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Profile updated successfully", toProfileResponse(user), nil)
}
