package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PhiHoang41/lumina-backend/internal/service"
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

// UserHandler exposes endpoints about the authenticated user.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GetMe handles GET /api/v1/users/me. The user id comes from the verified
// token claims, never from the request.
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, http.StatusOK, "User profile retrieved successfully", user)
}
