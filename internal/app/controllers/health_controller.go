package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kartavya/website/internal/app/models/dto"
)

// Pinger checks store reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports liveness
type HealthController struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db, timeout: 2 * time.Second}
}

// Health answers 200 while the process is up; a failed ping only degrades the status.
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	resp := dto.HealthResponse{Status: "ok", Database: "up"}
	if c.db == nil {
		resp.Database = "unconfigured"
	} else {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), c.timeout)
		defer cancel()
		if err := c.db.Ping(pingCtx); err != nil {
			resp.Status = "degraded"
			resp.Database = "down"
		}
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
