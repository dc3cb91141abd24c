package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// HealthHandler serves the liveness probe.
type HealthHandler struct {
	db  *sqlx.DB
	env string
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(db *sqlx.DB, env string) *HealthHandler {
	return &HealthHandler{db: db, env: env}
}

// Get reports service and database health.
func (h *HealthHandler) Get(c *gin.Context) {
	status := "ok"
	code := 200
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		status = "degraded"
		code = 503
	}

	c.JSON(code, gin.H{
		"status":      status,
		"timestamp":   time.Now().Format(time.RFC3339),
		"environment": h.env,
	})
}
