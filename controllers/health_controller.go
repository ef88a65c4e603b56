package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthCheck probes one dependency, such as the database connection.
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	Checks map[string]HealthCheck
	Log    *logrus.Logger
}

func NewHealthController(checks map[string]HealthCheck, log *logrus.Logger) *HealthController {
	return &HealthController{Checks: checks, Log: log}
}

func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, state := http.StatusOK, "ok"
	results := make(map[string]string, len(hc.Checks))
	for name, check := range hc.Checks {
		if err := check(ctx); err != nil {
			hc.Log.WithError(err).WithField("check", name).Warn("health check failed")
			results[name] = "down"
			status, state = http.StatusServiceUnavailable, "degraded"
			continue
		}
		results[name] = "up"
	}

	c.JSON(status, gin.H{
		"success": status == http.StatusOK,
		"status":  state,
		"checks":  results,
		"time":    time.Now().UTC(),
	})
}
