package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

// HealthHandler reports service liveness and database reachability.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := "up"
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		dbStatus = "down"
	}

	utils.Success(c, http.StatusOK, "Service is healthy", gin.H{
		"status":   "ok",
		"database": dbStatus,
	})
}
