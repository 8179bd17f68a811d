package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PhiHoang41/lumina-backend/internal/service"
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.auth.Register(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, http.StatusCreated, "Account registered successfully", user)
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, http.StatusOK, "Login successful", gin.H{
		"accessToken": token,
		"user":        user,
	})
}
