package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/factory"
	"liyu1981.xyz/factory-monitor-service/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s %q", param, c.Param(param))})
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return n, nil
}

func (rs *RestfulServer) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, factory.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, factory.ErrInvalidConfiguration):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger := common.GetLoggerWith(common.LoggerNameRestfulServer)
		logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetAlerts applies the first filter present, in the order sensor_id,
// facility_id, severity, from/to, recent, limit.
func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	ctx := c.Request.Context()
	alert := rs.Factory.Alert

	var (
		alerts []models.AlertView
		err    error
	)

	switch {
	case c.Query("sensor_id") != "":
		var id uint64
		if id, err = strconv.ParseUint(c.Query("sensor_id"), 10, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sensor_id"})
			return
		}
		alerts, err = alert.FindBySensor(ctx, uint(id))

	case c.Query("facility_id") != "":
		var id uint64
		if id, err = strconv.ParseUint(c.Query("facility_id"), 10, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility_id"})
			return
		}
		alerts, err = alert.FindByFacility(ctx, uint(id))

	case c.Query("severity") != "":
		var severity models.Severity
		if severity, err = models.ParseSeverity(c.Query("severity")); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		alerts, err = alert.FindBySeverity(ctx, severity)

	case c.Query("from") != "" || c.Query("to") != "":
		from, errFrom := time.Parse(time.RFC3339, c.Query("from"))
		to, errTo := time.Parse(time.RFC3339, c.Query("to"))
		if errFrom != nil || errTo != nil || to.Before(from) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from and to should be RFC3339 times with from <= to"})
			return
		}
		alerts, err = alert.FindByPeriod(ctx, from, to)

	case c.Query("recent") == "true":
		alerts, err = alert.FindRecentOnly(ctx)

	case c.Query("limit") != "":
		var limit int
		if limit, err = queryInt(c, "limit", 10); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		alerts, err = alert.FindTop(ctx, limit)

	default:
		alerts, err = alert.FindAll(ctx)
	}

	if err != nil {
		rs.writeError(c, err)
		return
	}

	if alerts == nil {
		alerts = []models.AlertView{}
	}
	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) GetAlert(c *gin.Context) {
	alertID, ok := parseID(c, "alert_id")
	if !ok {
		return
	}

	view, err := rs.Factory.Alert.FindByID(c.Request.Context(), alertID)
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (rs *RestfulServer) GetAlertSummaries(c *gin.Context) {
	limit, err := queryInt(c, "limit", 10)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summaries, err := rs.Factory.Alert.Summaries(c.Request.Context(), limit)
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

func (rs *RestfulServer) GetAlertStats(c *gin.Context) {
	if rs.Stats == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	snapshot, err := rs.Stats.Snapshot(c.Request.Context())
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

type ManualAlertRequest struct {
	SensorID int     `json:"sensorId" zog:"sensorId"`
	Value    float64 `json:"value" zog:"value"`
	Message  string  `json:"message" zog:"message"`
}

var manualAlertRequestSchema = z.Struct(z.Shape{
	"SensorID": z.Int().GT(0).Required(),
	"Value":    z.Float64().Required(),
	"Message":  z.String().Min(1).Max(500).Required(),
})

// PostAlert raises an alert by hand. It goes through the same path as a
// detected breach, so notifications fire as usual.
func (rs *RestfulServer) PostAlert(c *gin.Context) {
	if !rs.CheckClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ManualAlertRequest
	if err := manualAlertRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	view, err := rs.Factory.Alert.CreateAlert(c.Request.Context(), uint(req.SensorID), req.Value, req.Message)
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (rs *RestfulServer) DeleteAlert(c *gin.Context) {
	if !rs.CheckClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	alertID, ok := parseID(c, "alert_id")
	if !ok {
		return
	}

	if err := rs.Factory.Alert.DeleteByID(c.Request.Context(), alertID); err != nil {
		rs.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) PurgeAlerts(c *gin.Context) {
	if !rs.CheckClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	if c.Query("older_than_days") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "older_than_days is required"})
		return
	}
	days, err := queryInt(c, "older_than_days", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := rs.Factory.Alert.DeleteOlderThan(c.Request.Context(), days)
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ThresholdRequest sets both thresholds, or clears both when they are null.
type ThresholdRequest struct {
	ThresholdMin *float64 `json:"thresholdMin"`
	ThresholdMax *float64 `json:"thresholdMax"`
}

func (rs *RestfulServer) UpdateThresholds(c *gin.Context) {
	if !rs.CheckClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	sensorID, ok := parseID(c, "sensor_id")
	if !ok {
		return
	}

	var req ThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sensor, err := rs.Factory.Sensor.UpdateThresholds(c.Request.Context(), sensorID, req.ThresholdMin, req.ThresholdMax)
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sensor)
}

func (rs *RestfulServer) GetRecentReadings(c *gin.Context) {
	sensorID, ok := parseID(c, "sensor_id")
	if !ok {
		return
	}

	limit, err := queryInt(c, "limit", 10)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	readings, err := rs.Factory.Reading.FindRecent(c.Request.Context(), sensorID, limit)
	if err != nil {
		rs.writeError(c, err)
		return
	}

	if readings == nil {
		readings = []models.Reading{}
	}
	c.JSON(http.StatusOK, readings)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
