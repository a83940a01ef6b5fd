package factory

import (
	"context"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/metrics"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
)

func (f *Factory) appendReading(ctx context.Context, sensorID uint, value float64, collectedAt time.Time) (*models.Reading, error) {
	if err := checkFinite(sensorID, value); err != nil {
		return nil, err
	}
	if collectedAt.IsZero() {
		collectedAt = f.now()
	}

	reading := models.Reading{
		SensorID:    sensorID,
		Value:       value,
		CollectedAt: collectedAt.UTC(),
	}

	if err := f.Db.Conn.WithContext(ctx).Create(&reading).Error; err != nil {
		return nil, err
	}
	metrics.ReadingsTotal.Inc()

	logger := common.GetCategoryLogger(common.LoggerNameFactoryCore, common.LoggerCategoryReading)
	logger.Debug("Reading appended", zap.Reflect("reading", reading))

	return &reading, nil
}

func (f *Factory) findReadingsByPeriod(ctx context.Context, sensorID uint, from, to time.Time) ([]models.Reading, error) {
	var readings []models.Reading
	err := f.Db.Conn.WithContext(ctx).
		Where("sensor_id = ? AND collected_at BETWEEN ? AND ?", sensorID, from.UTC(), to.UTC()).
		Order("collected_at").
		Find(&readings).Error
	return readings, err
}

func (f *Factory) findRecentReadings(ctx context.Context, sensorID uint, limit int) ([]models.Reading, error) {
	if limit <= 0 {
		limit = 10
	}
	var readings []models.Reading
	err := f.Db.Conn.WithContext(ctx).
		Where("sensor_id = ?", sensorID).
		Order("collected_at desc, id desc").
		Limit(limit).
		Find(&readings).Error
	return readings, err
}

func (f *Factory) readingStatistics(ctx context.Context, sensorID uint, from, to time.Time) (*models.ReadingStatistics, error) {
	stats := models.ReadingStatistics{SensorID: sensorID}
	err := f.Db.Conn.WithContext(ctx).
		Model(&models.Reading{}).
		Select("COUNT(*) AS count, COALESCE(AVG(value), 0) AS avg, COALESCE(MIN(value), 0) AS min, COALESCE(MAX(value), 0) AS max").
		Where("sensor_id = ? AND collected_at BETWEEN ? AND ?", sensorID, from.UTC(), to.UTC()).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	stats.SensorID = sensorID
	return &stats, nil
}

// detectAnomalies returns the readings of the period that fall outside the
// sensor's current thresholds.
func (f *Factory) detectAnomalies(ctx context.Context, sensorID uint, from, to time.Time) ([]models.Reading, error) {
	sensor, err := f.getSensor(ctx, sensorID)
	if err != nil {
		return nil, err
	}
	if !sensor.HasThresholds() {
		return []models.Reading{}, nil
	}

	readings, err := f.findReadingsByPeriod(ctx, sensorID, from, to)
	if err != nil {
		return nil, err
	}

	return common.Filter(readings, func(r models.Reading) bool {
		return !sensor.IsValueWithinThreshold(r.Value)
	}), nil
}

type IReadingImpl struct {
	factory *Factory
}

func (ir *IReadingImpl) Append(ctx context.Context, sensorID uint, value float64, collectedAt time.Time) (*models.Reading, error) {
	return ir.factory.appendReading(ctx, sensorID, value, collectedAt)
}

func (ir *IReadingImpl) FindByPeriod(ctx context.Context, sensorID uint, from, to time.Time) ([]models.Reading, error) {
	return ir.factory.findReadingsByPeriod(ctx, sensorID, from, to)
}

func (ir *IReadingImpl) FindRecent(ctx context.Context, sensorID uint, limit int) ([]models.Reading, error) {
	return ir.factory.findRecentReadings(ctx, sensorID, limit)
}

func (ir *IReadingImpl) Statistics(ctx context.Context, sensorID uint, from, to time.Time) (*models.ReadingStatistics, error) {
	return ir.factory.readingStatistics(ctx, sensorID, from, to)
}

func (ir *IReadingImpl) DetectAnomalies(ctx context.Context, sensorID uint, from, to time.Time) ([]models.Reading, error) {
	return ir.factory.detectAnomalies(ctx, sensorID, from, to)
}

func (f *Factory) GetIReading() IReading {
	return &IReadingImpl{factory: f}
}
