package factory

import (
	"context"
	"fmt"
	"strings"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
)

var sensorInfoSchema = z.Struct(z.Shape{
	"Name": z.String().Min(1).Max(100).Required(),
	"Unit": z.String().Max(20),
})

func validateBasicInfo(info *SensorBasicInfo) error {
	info.Name = strings.TrimSpace(info.Name)
	if issues := sensorInfoSchema.Validate(info); issues != nil {
		return invalid("sensor info: %v", issues)
	}
	if !info.Type.IsValid() {
		return invalid("unknown sensor type %q", info.Type)
	}
	return nil
}

// validateThresholds enforces both-or-neither, min >= 0 and min < max.
func validateThresholds(min, max *float64) error {
	if min == nil && max == nil {
		return nil
	}
	if min == nil || max == nil {
		return invalid("thresholdMin and thresholdMax must be set together")
	}
	if *min < 0 {
		return invalid("thresholdMin %.2f is negative", *min)
	}
	if *min >= *max {
		return invalid("thresholdMin %.2f must be less than thresholdMax %.2f", *min, *max)
	}
	return nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func (f *Factory) createSensor(ctx context.Context, input *models.Sensor) (*models.Sensor, error) {
	logger := common.GetCategoryLogger(common.LoggerNameFactoryCore, common.LoggerCategorySensor)

	info := SensorBasicInfo{Name: input.Name, Type: input.Type, Unit: input.Unit}
	if err := validateBasicInfo(&info); err != nil {
		return nil, err
	}
	if err := validateThresholds(input.ThresholdMin, input.ThresholdMax); err != nil {
		return nil, err
	}
	if _, err := f.getFacility(ctx, input.FacilityID); err != nil {
		return nil, err
	}

	sensor := models.Sensor{
		FacilityID:   input.FacilityID,
		Name:         info.Name,
		Type:         info.Type,
		Unit:         info.Unit,
		ThresholdMin: copyFloat(input.ThresholdMin),
		ThresholdMax: copyFloat(input.ThresholdMax),
		CreatedAt:    f.now(),
	}

	if err := f.Db.Conn.WithContext(ctx).Create(&sensor).Error; err != nil {
		return nil, err
	}

	logger.Info("Sensor created", zap.Reflect("sensor", sensor))

	return &sensor, nil
}

func (f *Factory) updateBasicInfo(ctx context.Context, sensorID uint, info SensorBasicInfo) (*models.Sensor, error) {
	if err := validateBasicInfo(&info); err != nil {
		return nil, err
	}

	sensor, err := f.getSensor(ctx, sensorID)
	if err != nil {
		return nil, err
	}

	err = f.Db.Conn.WithContext(ctx).Model(&models.Sensor{}).
		Where("id = ?", sensorID).
		Updates(map[string]any{"name": info.Name, "type": info.Type, "unit": info.Unit}).Error
	if err != nil {
		return nil, err
	}

	sensor.Name, sensor.Type, sensor.Unit = info.Name, info.Type, info.Unit
	return sensor, nil
}

// updateThresholds sets or clears both thresholds. Clearing takes the sensor out
// of monitoring.
func (f *Factory) updateThresholds(ctx context.Context, sensorID uint, min, max *float64) (*models.Sensor, error) {
	logger := common.GetCategoryLogger(common.LoggerNameFactoryCore, common.LoggerCategorySensor)

	if err := validateThresholds(min, max); err != nil {
		logger.Warn("Rejected threshold configuration", zap.Uint("sensor_id", sensorID), zap.Error(err))
		return nil, err
	}

	sensor, err := f.getSensor(ctx, sensorID)
	if err != nil {
		return nil, err
	}

	sensor.ThresholdMin, sensor.ThresholdMax = copyFloat(min), copyFloat(max)

	err = f.Db.Conn.WithContext(ctx).Model(&models.Sensor{}).
		Where("id = ?", sensorID).
		Updates(map[string]any{"threshold_min": sensor.ThresholdMin, "threshold_max": sensor.ThresholdMax}).Error
	if err != nil {
		return nil, err
	}

	logger.Info("Sensor thresholds updated",
		zap.Uint("sensor_id", sensorID),
		zap.String("min", models.FormatThreshold(min)),
		zap.String("max", models.FormatThreshold(max)),
	)

	return sensor, nil
}

func (f *Factory) deleteSensor(ctx context.Context, sensorID uint) error {
	res := f.Db.Conn.WithContext(ctx).Delete(&models.Sensor{}, sensorID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound("sensor", sensorID)
	}

	logger := common.GetCategoryLogger(common.LoggerNameFactoryCore, common.LoggerCategorySensor)
	logger.Info("Sensor deleted", zap.Uint("sensor_id", sensorID))
	return nil
}

func (f *Factory) getSensor(ctx context.Context, sensorID uint) (*models.Sensor, error) {
	var sensor models.Sensor
	err := f.Db.Conn.WithContext(ctx).Preload("Facility").First(&sensor, sensorID).Error
	if err != nil {
		return nil, mapRecordErr(err, "sensor", sensorID)
	}
	return &sensor, nil
}

func (f *Factory) listByFacility(ctx context.Context, facilityID uint) ([]models.Sensor, error) {
	var sensors []models.Sensor
	err := f.Db.Conn.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("id").
		Find(&sensors).Error
	return sensors, err
}

// getActiveSensorIDs lists sensors on RUNNING facilities with both thresholds.
func (f *Factory) getActiveSensorIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := f.Db.Conn.WithContext(ctx).
		Model(&models.Sensor{}).
		Joins("JOIN facilities ON facilities.id = sensors.facility_id").
		Where("facilities.status = ?", models.FacilityStatusRunning).
		Where("sensors.threshold_min IS NOT NULL AND sensors.threshold_max IS NOT NULL").
		Order("sensors.id").
		Pluck("sensors.id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list active sensors: %w", err)
	}
	return ids, nil
}

func (f *Factory) hasThresholds(ctx context.Context, sensorID uint) (bool, error) {
	sensor, err := f.getSensor(ctx, sensorID)
	if err != nil {
		return false, err
	}
	return sensor.HasThresholds(), nil
}

func (f *Factory) isValueWithinThreshold(ctx context.Context, sensorID uint, value float64) (bool, error) {
	sensor, err := f.getSensor(ctx, sensorID)
	if err != nil {
		return false, err
	}
	return sensor.IsValueWithinThreshold(value), nil
}

type ISensorImpl struct {
	factory *Factory
}

func (is *ISensorImpl) CreateSensor(ctx context.Context, input *models.Sensor) (*models.Sensor, error) {
	return is.factory.createSensor(ctx, input)
}

func (is *ISensorImpl) UpdateBasicInfo(ctx context.Context, sensorID uint, info SensorBasicInfo) (*models.Sensor, error) {
	return is.factory.updateBasicInfo(ctx, sensorID, info)
}

func (is *ISensorImpl) UpdateThresholds(ctx context.Context, sensorID uint, min, max *float64) (*models.Sensor, error) {
	return is.factory.updateThresholds(ctx, sensorID, min, max)
}

func (is *ISensorImpl) DeleteSensor(ctx context.Context, sensorID uint) error {
	return is.factory.deleteSensor(ctx, sensorID)
}

func (is *ISensorImpl) GetSensor(ctx context.Context, sensorID uint) (*models.Sensor, error) {
	return is.factory.getSensor(ctx, sensorID)
}

func (is *ISensorImpl) ListByFacility(ctx context.Context, facilityID uint) ([]models.Sensor, error) {
	return is.factory.listByFacility(ctx, facilityID)
}

func (is *ISensorImpl) GetActiveSensorIDs(ctx context.Context) ([]uint, error) {
	return is.factory.getActiveSensorIDs(ctx)
}

func (is *ISensorImpl) HasThresholds(ctx context.Context, sensorID uint) (bool, error) {
	return is.factory.hasThresholds(ctx, sensorID)
}

func (is *ISensorImpl) IsValueWithinThreshold(ctx context.Context, sensorID uint, value float64) (bool, error) {
	return is.factory.isValueWithinThreshold(ctx, sensorID, value)
}

func (f *Factory) GetISensor() ISensor {
	return &ISensorImpl{factory: f}
}
