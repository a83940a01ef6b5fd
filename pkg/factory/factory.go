//go:generate mockgen -source=factory.go -destination=mocks/factory_mock.go -package=mocks

package factory

import (
	"context"
	"time"

	"liyu1981.xyz/factory-monitor-service/pkg/db"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
	"liyu1981.xyz/factory-monitor-service/pkg/threshold"
)

const DefaultRecentWindow = 30 * time.Minute

type SensorBasicInfo struct {
	Name string
	Type models.SensorType
	Unit string
}

type ISensor interface {
	CreateSensor(ctx context.Context, input *models.Sensor) (*models.Sensor, error)
	UpdateBasicInfo(ctx context.Context, sensorID uint, info SensorBasicInfo) (*models.Sensor, error)
	UpdateThresholds(ctx context.Context, sensorID uint, min, max *float64) (*models.Sensor, error)
	DeleteSensor(ctx context.Context, sensorID uint) error
	GetSensor(ctx context.Context, sensorID uint) (*models.Sensor, error)
	ListByFacility(ctx context.Context, facilityID uint) ([]models.Sensor, error)
	GetActiveSensorIDs(ctx context.Context) ([]uint, error)
	HasThresholds(ctx context.Context, sensorID uint) (bool, error)
	IsValueWithinThreshold(ctx context.Context, sensorID uint, value float64) (bool, error)
}

type IFacility interface {
	CreateFacility(ctx context.Context, input *models.Facility) (*models.Facility, error)
	GetFacility(ctx context.Context, facilityID uint) (*models.Facility, error)
	ListFacilities(ctx context.Context) ([]models.Facility, error)
	UpdateStatus(ctx context.Context, facilityID uint, status models.FacilityStatus) (*models.Facility, error)
}

type IReading interface {
	Append(ctx context.Context, sensorID uint, value float64, collectedAt time.Time) (*models.Reading, error)
	FindByPeriod(ctx context.Context, sensorID uint, from, to time.Time) ([]models.Reading, error)
	FindRecent(ctx context.Context, sensorID uint, limit int) ([]models.Reading, error)
	Statistics(ctx context.Context, sensorID uint, from, to time.Time) (*models.ReadingStatistics, error)
	DetectAnomalies(ctx context.Context, sensorID uint, from, to time.Time) ([]models.Reading, error)
}

type IAlert interface {
	CreateAlert(ctx context.Context, sensorID uint, value float64, message string) (*models.AlertView, error)
	CheckAndCreateAlert(ctx context.Context, sensorID uint, value float64) (*models.AlertView, error)

	FindAll(ctx context.Context) ([]models.AlertView, error)
	FindByID(ctx context.Context, alertID uint) (*models.AlertView, error)
	FindBySensor(ctx context.Context, sensorID uint) ([]models.AlertView, error)
	FindByPeriod(ctx context.Context, from, to time.Time) ([]models.AlertView, error)
	FindBySeverity(ctx context.Context, severity models.Severity) ([]models.AlertView, error)
	FindRecentOnly(ctx context.Context) ([]models.AlertView, error)
	FindByFacility(ctx context.Context, facilityID uint) ([]models.AlertView, error)
	FindTop(ctx context.Context, limit int) ([]models.AlertView, error)
	Summaries(ctx context.Context, limit int) ([]string, error)
	CountRecent(ctx context.Context) (int64, error)
	CountBySensor(ctx context.Context, sensorID uint) (int64, error)

	DeleteByID(ctx context.Context, alertID uint) error
	DeleteBySensor(ctx context.Context, sensorID uint) (int64, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type IUser interface {
	CreateUser(ctx context.Context, input *models.User) (*models.User, error)
	GetActiveUserIDsByRole(ctx context.Context, roles ...models.Role) ([]string, error)
	GetActiveEmailsByRole(ctx context.Context, roles ...models.Role) ([]string, error)
	GetEmergencyPhoneNumbers(ctx context.Context) ([]string, error)
}

// EventPublisher is satisfied by *events.Bus[models.AlertCreatedEvent].
type EventPublisher interface {
	Publish(event models.AlertCreatedEvent) int
}

type Factory struct {
	Db       db.DB
	Sensor   ISensor
	Facility IFacility
	Reading  IReading
	Alert    IAlert
	User     IUser

	Events       EventPublisher
	Policy       threshold.Policy
	RecentWindow time.Duration
	Now          func() time.Time
}

type ServiceOpts struct {
	Sensor   ISensor
	Facility IFacility
	Reading  IReading
	Alert    IAlert
	User     IUser
}

// New wires the default gorm backed services on top of database.
func New(database *db.DB, events EventPublisher) *Factory {
	f := &Factory{
		Db:           *database,
		Events:       events,
		Policy:       threshold.DefaultPolicy(),
		RecentWindow: DefaultRecentWindow,
	}
	return f.WithServices(ServiceOpts{
		Sensor:   f.GetISensor(),
		Facility: f.GetIFacility(),
		Reading:  f.GetIReading(),
		Alert:    f.GetIAlert(),
		User:     f.GetIUser(),
	})
}

func (f *Factory) WithServices(opts ServiceOpts) *Factory {
	if opts.Sensor != nil {
		f.Sensor = opts.Sensor
	}
	if opts.Facility != nil {
		f.Facility = opts.Facility
	}
	if opts.Reading != nil {
		f.Reading = opts.Reading
	}
	if opts.Alert != nil {
		f.Alert = opts.Alert
	}
	if opts.User != nil {
		f.User = opts.User
	}
	return f
}

func (f *Factory) now() time.Time {
	if f.Now != nil {
		return f.Now().UTC()
	}
	return time.Now().UTC()
}

func (f *Factory) recentWindow() time.Duration {
	if f.RecentWindow > 0 {
		return f.RecentWindow
	}
	return DefaultRecentWindow
}
