package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"pkmlab.dev/sensor-monitor-service/pkg/ingest"
	"pkmlab.dev/sensor-monitor-service/pkg/sensor"
)

type RestfulServer struct {
	Server           *gin.Engine
	Core             *sensor.Monitor
	Ingest           ingest.StatusReporter
	RateLimiterStore *sensor.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientID)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientID string) bool {
	limiter := rs.GetLimiter(clientID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(clientID string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientID, rate.Limit(clientRate), clientBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api/v1")
	{
		api.GET("/data/latest", rs.GetLatest)
		api.GET("/data/history", rs.GetHistory)

		api.GET("/thresholds", rs.GetThresholds)
		api.PUT("/thresholds", rs.UpdateThresholds)
		api.POST("/thresholds/reset", rs.ResetThresholds)

		api.GET("/alerts", rs.GetAlerts)
		api.GET("/alerts/summary", rs.GetAlertSummary)
		api.DELETE("/alerts/:alert_id", rs.DismissAlert)
		api.DELETE("/alerts", rs.ClearAlerts)

		api.POST("/limiter", rs.PostLimiter)
	}
}
