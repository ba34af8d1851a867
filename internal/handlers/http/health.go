package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sweaters/internal/models"
)

func (h *Handlers) registerHealthEndpoints(r *gin.Engine) {
	r.GET("/health", h.getHealth)
}

// Responde 200 quando o store responde ao ping
func (h *Handlers) getHealth(c *gin.Context) {
	if err := h.useCases.CheckHealth(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, models.HealthCheckResponse{Status: "unavailable", Store: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.HealthCheckResponse{Status: "OK", Store: "alive"})
}
