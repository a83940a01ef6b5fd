package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"liyu1981.xyz/factory-monitor-service/pkg/factory"
	"liyu1981.xyz/factory-monitor-service/pkg/notify"
)

const limiterChannel = "http"

type RestfulServer struct {
	Server  *gin.Engine
	Factory *factory.Factory
	Hub     *notify.Hub
	Stats   notify.StatsStore

	// RateLimiterStore throttles write endpoints per client ip, nil means no limit.
	RateLimiterStore *notify.RateLimiterStore
}

func (rs *RestfulServer) CheckClientLimiter(c *gin.Context) bool {
	if rs.RateLimiterStore == nil {
		return true
	}
	return rs.RateLimiterStore.Allow(limiterChannel, c.ClientIP())
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if rs.Hub != nil {
		rs.Server.GET("/ws", gin.WrapF(rs.Hub.ServeWS))
	}

	alerts := rs.Server.Group("/alerts")
	{
		alerts.GET("", rs.GetAlerts)
		alerts.POST("", rs.PostAlert)
		alerts.DELETE("", rs.PurgeAlerts)
		alerts.GET("/summaries", rs.GetAlertSummaries)
		alerts.GET("/stats", rs.GetAlertStats)
		alerts.GET("/:alert_id", rs.GetAlert)
		alerts.DELETE("/:alert_id", rs.DeleteAlert)
	}

	sensors := rs.Server.Group("/sensors/:sensor_id")
	{
		sensors.PUT("/thresholds", rs.UpdateThresholds)
		sensors.GET("/readings", rs.GetRecentReadings)
	}
}
