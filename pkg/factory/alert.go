package factory

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/metrics"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
	"liyu1981.xyz/factory-monitor-service/pkg/threshold"
)

func (f *Factory) policy() threshold.Policy {
	if f.Policy.HighRatio <= 0 {
		return threshold.DefaultPolicy()
	}
	return f.Policy
}

func (f *Factory) toView(alert *models.Alert) models.AlertView {
	return models.AlertView{
		ID:           alert.ID,
		SensorID:     alert.SensorID,
		SensorName:   alert.Sensor.Name,
		SensorType:   alert.Sensor.Type,
		Unit:         alert.Sensor.Unit,
		FacilityID:   alert.Sensor.FacilityID,
		FacilityName: alert.Sensor.Facility.Name,
		Value:        alert.Value,
		Message:      alert.Message,
		CreatedAt:    alert.CreatedAt,
		ThresholdMin: alert.ThresholdMin,
		ThresholdMax: alert.ThresholdMax,
		Severity:     f.policy().ViewSeverity(alert.ThresholdMin, alert.ThresholdMax, alert.Value),
	}
}

func (f *Factory) toViews(alerts []models.Alert) []models.AlertView {
	return common.Mapper(alerts, func(a models.Alert) models.AlertView { return f.toView(&a) })
}

// createAlert is the only write path for alerts. The event is handed to the
// bus after the row is stored; notification delivery is never awaited.
func (f *Factory) createAlert(ctx context.Context, sensorID uint, value float64, message string) (*models.AlertView, error) {
	if err := checkFinite(sensorID, value); err != nil {
		return nil, err
	}

	logger := common.GetCategoryLogger(common.LoggerNameFactoryCore, common.LoggerCategoryAlert)

	sensor, err := f.getSensor(ctx, sensorID)
	if err != nil {
		return nil, err
	}

	alert := models.Alert{
		SensorID:     sensorID,
		Value:        value,
		Message:      message,
		CreatedAt:    f.now(),
		ThresholdMin: copyFloat(sensor.ThresholdMin),
		ThresholdMax: copyFloat(sensor.ThresholdMax),
	}

	logger.Info("Alert found", zap.Reflect("alert", alert))

	if err := f.Db.Conn.WithContext(ctx).Create(&alert).Error; err != nil {
		return nil, fmt.Errorf("persist alert for sensor %d: %w", sensorID, err)
	}

	logger.Info("Alert saved", zap.Reflect("alert", alert))

	alert.Sensor = *sensor
	view := f.toView(&alert)
	metrics.AlertsTotal.WithLabelValues(string(view.Severity)).Inc()

	if f.Events != nil {
		f.Events.Publish(models.NewAlertCreatedEvent(view, f.now()))
	}

	return &view, nil
}

// checkAndCreateAlert returns nil without touching the store when the sensor
// has no thresholds or the value is in range.
func (f *Factory) checkAndCreateAlert(ctx context.Context, sensorID uint, value float64) (*models.AlertView, error) {
	if err := checkFinite(sensorID, value); err != nil {
		return nil, err
	}

	sensor, err := f.getSensor(ctx, sensorID)
	if err != nil {
		return nil, err
	}

	if !sensor.HasThresholds() {
		return nil, nil
	}

	res := f.policy().Evaluate(sensor.ThresholdMin, sensor.ThresholdMax, value)
	if res.WithinRange {
		return nil, nil
	}

	message := fmt.Sprintf("Sensor '%s' out of range: %.2f (threshold %.2f - %.2f)",
		sensor.Name, value, *sensor.ThresholdMin, *sensor.ThresholdMax)

	return f.createAlert(ctx, sensorID, value, message)
}

func (f *Factory) alertQuery(ctx context.Context) *gorm.DB {
	return f.Db.Conn.WithContext(ctx).
		Model(&models.Alert{}).
		Preload("Sensor.Facility").
		Order("alerts.created_at desc, alerts.id desc")
}

func (f *Factory) findAlerts(query *gorm.DB) ([]models.AlertView, error) {
	var alerts []models.Alert
	if err := query.Find(&alerts).Error; err != nil {
		return nil, err
	}
	return f.toViews(alerts), nil
}

func (f *Factory) findAllAlerts(ctx context.Context) ([]models.AlertView, error) {
	return f.findAlerts(f.alertQuery(ctx))
}

func (f *Factory) findAlertByID(ctx context.Context, alertID uint) (*models.AlertView, error) {
	var alert models.Alert
	err := f.Db.Conn.WithContext(ctx).Preload("Sensor.Facility").First(&alert, alertID).Error
	if err != nil {
		return nil, mapRecordErr(err, "alert", alertID)
	}
	view := f.toView(&alert)
	return &view, nil
}

func (f *Factory) findAlertsBySensor(ctx context.Context, sensorID uint) ([]models.AlertView, error) {
	return f.findAlerts(f.alertQuery(ctx).Where("alerts.sensor_id = ?", sensorID))
}

func (f *Factory) findAlertsByPeriod(ctx context.Context, from, to time.Time) ([]models.AlertView, error) {
	return f.findAlerts(f.alertQuery(ctx).Where("alerts.created_at BETWEEN ? AND ?", from.UTC(), to.UTC()))
}

// findAlertsBySeverity filters in memory since severity is never stored.
func (f *Factory) findAlertsBySeverity(ctx context.Context, severity models.Severity) ([]models.AlertView, error) {
	views, err := f.findAllAlerts(ctx)
	if err != nil {
		return nil, err
	}
	return common.Filter(views, func(v models.AlertView) bool { return v.Severity == severity }), nil
}

func (f *Factory) findRecentAlerts(ctx context.Context) ([]models.AlertView, error) {
	cutoff := f.now().Add(-f.recentWindow())
	return f.findAlerts(f.alertQuery(ctx).Where("alerts.created_at >= ?", cutoff))
}

func (f *Factory) findAlertsByFacility(ctx context.Context, facilityID uint) ([]models.AlertView, error) {
	return f.findAlerts(f.alertQuery(ctx).
		Joins("JOIN sensors ON sensors.id = alerts.sensor_id").
		Where("sensors.facility_id = ?", facilityID))
}

func (f *Factory) findTopAlerts(ctx context.Context, limit int) ([]models.AlertView, error) {
	if limit <= 0 {
		limit = 10
	}
	return f.findAlerts(f.alertQuery(ctx).Limit(limit))
}

func (f *Factory) alertSummaries(ctx context.Context, limit int) ([]string, error) {
	views, err := f.findTopAlerts(ctx, limit)
	if err != nil {
		return nil, err
	}
	return common.Mapper(views, func(v models.AlertView) string { return v.Summary() }), nil
}

func (f *Factory) countRecentAlerts(ctx context.Context) (int64, error) {
	var count int64
	cutoff := f.now().Add(-f.recentWindow())
	err := f.Db.Conn.WithContext(ctx).Model(&models.Alert{}).Where("created_at >= ?", cutoff).Count(&count).Error
	return count, err
}

func (f *Factory) countAlertsBySensor(ctx context.Context, sensorID uint) (int64, error) {
	var count int64
	err := f.Db.Conn.WithContext(ctx).Model(&models.Alert{}).Where("sensor_id = ?", sensorID).Count(&count).Error
	return count, err
}

func (f *Factory) deleteAlertByID(ctx context.Context, alertID uint) error {
	res := f.Db.Conn.WithContext(ctx).Delete(&models.Alert{}, alertID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound("alert", alertID)
	}

	logger := common.GetCategoryLogger(common.LoggerNameFactoryCore, common.LoggerCategoryAlert)
	logger.Info("Alert deleted", zap.Uint("alert_id", alertID))
	return nil
}

func (f *Factory) deleteAlertsBySensor(ctx context.Context, sensorID uint) (int64, error) {
	res := f.Db.Conn.WithContext(ctx).Where("sensor_id = ?", sensorID).Delete(&models.Alert{})
	return res.RowsAffected, res.Error
}

// deleteAlertsOlderThan removes alerts created strictly before now - days.
// An alert exactly on the cutoff is kept.
func (f *Factory) deleteAlertsOlderThan(ctx context.Context, days int) (int64, error) {
	if days < 0 {
		return 0, invalid("retention days %d is negative", days)
	}

	cutoff := f.now().AddDate(0, 0, -days)
	res := f.Db.Conn.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.Alert{})
	if res.Error != nil {
		return 0, res.Error
	}

	logger := common.GetCategoryLogger(common.LoggerNameFactoryCore, common.LoggerCategoryAlert)
	logger.Info("Expired alerts deleted",
		zap.Int("days", days),
		zap.Time("cutoff", cutoff),
		zap.Int64("deleted", res.RowsAffected),
	)

	return res.RowsAffected, nil
}

type IAlertImpl struct {
	factory *Factory
}

func (ia *IAlertImpl) CreateAlert(ctx context.Context, sensorID uint, value float64, message string) (*models.AlertView, error) {
	return ia.factory.createAlert(ctx, sensorID, value, message)
}

func (ia *IAlertImpl) CheckAndCreateAlert(ctx context.Context, sensorID uint, value float64) (*models.AlertView, error) {
	return ia.factory.checkAndCreateAlert(ctx, sensorID, value)
}

func (ia *IAlertImpl) FindAll(ctx context.Context) ([]models.AlertView, error) {
	return ia.factory.findAllAlerts(ctx)
}

func (ia *IAlertImpl) FindByID(ctx context.Context, alertID uint) (*models.AlertView, error) {
	return ia.factory.findAlertByID(ctx, alertID)
}

func (ia *IAlertImpl) FindBySensor(ctx context.Context, sensorID uint) ([]models.AlertView, error) {
	return ia.factory.findAlertsBySensor(ctx, sensorID)
}

func (ia *IAlertImpl) FindByPeriod(ctx context.Context, from, to time.Time) ([]models.AlertView, error) {
	return ia.factory.findAlertsByPeriod(ctx, from, to)
}

func (ia *IAlertImpl) FindBySeverity(ctx context.Context, severity models.Severity) ([]models.AlertView, error) {
	return ia.factory.findAlertsBySeverity(ctx, severity)
}

func (ia *IAlertImpl) FindRecentOnly(ctx context.Context) ([]models.AlertView, error) {
	return ia.factory.findRecentAlerts(ctx)
}

func (ia *IAlertImpl) FindByFacility(ctx context.Context, facilityID uint) ([]models.AlertView, error) {
	return ia.factory.findAlertsByFacility(ctx, facilityID)
}

func (ia *IAlertImpl) FindTop(ctx context.Context, limit int) ([]models.AlertView, error) {
	return ia.factory.findTopAlerts(ctx, limit)
}

func (ia *IAlertImpl) Summaries(ctx context.Context, limit int) ([]string, error) {
	return ia.factory.alertSummaries(ctx, limit)
}

func (ia *IAlertImpl) CountRecent(ctx context.Context) (int64, error) {
	return ia.factory.countRecentAlerts(ctx)
}

func (ia *IAlertImpl) CountBySensor(ctx context.Context, sensorID uint) (int64, error) {
	return ia.factory.countAlertsBySensor(ctx, sensorID)
}

func (ia *IAlertImpl) DeleteByID(ctx context.Context, alertID uint) error {
	return ia.factory.deleteAlertByID(ctx, alertID)
}

func (ia *IAlertImpl) DeleteBySensor(ctx context.Context, sensorID uint) (int64, error) {
	return ia.factory.deleteAlertsBySensor(ctx, sensorID)
}

func (ia *IAlertImpl) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	return ia.factory.deleteAlertsOlderThan(ctx, days)
}

func (f *Factory) GetIAlert() IAlert {
	return &IAlertImpl{factory: f}
}
