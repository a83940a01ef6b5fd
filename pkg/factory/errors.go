package factory

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

func notFound(what string, id uint) error {
	return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

// checkFinite rejects NaN and the infinities, which the store cannot keep.
func checkFinite(sensorID uint, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return invalid("sensor %d value %v is not a finite number", sensorID, value)
	}
	return nil
}

// mapRecordErr turns gorm.ErrRecordNotFound into ErrNotFound for what/id.
func mapRecordErr(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(what, id)
	}
	return err
}
