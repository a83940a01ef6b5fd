package models

import (
	"fmt"
	"time"
)

type FacilityStatus string

const (
	FacilityStatusRunning     FacilityStatus = "RUNNING"
	FacilityStatusStopped     FacilityStatus = "STOPPED"
	FacilityStatusMaintenance FacilityStatus = "MAINTENANCE"
	FacilityStatusBroken      FacilityStatus = "BROKEN"
)

func (s FacilityStatus) IsValid() bool {
	switch s {
	case FacilityStatusRunning, FacilityStatusStopped, FacilityStatusMaintenance, FacilityStatusBroken:
		return true
	}
	return false
}

type SensorType string

const (
	SensorTypeTemperature SensorType = "TEMPERATURE"
	SensorTypePressure    SensorType = "PRESSURE"
	SensorTypeVibration   SensorType = "VIBRATION"
	SensorTypeHumidity    SensorType = "HUMIDITY"
	SensorTypeCurrent     SensorType = "CURRENT"
	SensorTypeVoltage     SensorType = "VOLTAGE"
)

func (t SensorType) IsValid() bool {
	switch t {
	case SensorTypeTemperature, SensorTypePressure, SensorTypeVibration,
		SensorTypeHumidity, SensorTypeCurrent, SensorTypeVoltage:
		return true
	}
	return false
}

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleOperator Role = "OPERATOR"
)

type Facility struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Location  string         `json:"location"`
	Status    FacilityStatus `gorm:"type:varchar(20);index;check:status IN ('RUNNING','STOPPED','MAINTENANCE','BROKEN')" json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
}

type Sensor struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FacilityID   uint       `gorm:"index;not null" json:"facilityId"`
	Facility     Facility   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Type         SensorType `gorm:"type:varchar(20);check:type IN ('TEMPERATURE','PRESSURE','VIBRATION','HUMIDITY','CURRENT','VOLTAGE')" json:"type"`
	ThresholdMin *float64   `json:"thresholdMin,omitempty"`
	ThresholdMax *float64   `json:"thresholdMax,omitempty"`
	Unit         string     `gorm:"size:20" json:"unit"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func (s *Sensor) HasThresholds() bool {
	return s.ThresholdMin != nil && s.ThresholdMax != nil
}

// IsValueWithinThreshold reports true for sensors without thresholds.
func (s *Sensor) IsValueWithinThreshold(value float64) bool {
	if !s.HasThresholds() {
		return true
	}
	return value >= *s.ThresholdMin && value <= *s.ThresholdMax
}

type Reading struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SensorID    uint      `gorm:"index;not null" json:"sensorId"`
	Sensor      Sensor    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Value       float64   `json:"value"`
	CollectedAt time.Time `gorm:"index" json:"collectedAt"`
}

// Alert rows are immutable. The threshold pair is the sensor configuration at
// creation time.
type Alert struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SensorID     uint      `gorm:"index;not null" json:"sensorId"`
	Sensor       Sensor    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Value        float64   `json:"value"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
	ThresholdMin *float64  `json:"thresholdMin,omitempty"`
	ThresholdMax *float64  `json:"thresholdMax,omitempty"`
}

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     Role   `gorm:"type:varchar(20);index;check:role IN ('ADMIN','MANAGER','OPERATOR')" json:"role"`
	Active   bool   `gorm:"index" json:"active"`
}

type ReadingStatistics struct {
	SensorID uint    `json:"sensorId"`
	Count    int64   `json:"count"`
	Avg      float64 `json:"avg"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

func FormatThreshold(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
