package factory

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
)

func (f *Factory) createFacility(ctx context.Context, input *models.Facility) (*models.Facility, error) {
	logger := common.GetCategoryLogger(common.LoggerNameFactoryCore, common.LoggerCategoryFacility)

	facility := models.Facility{
		Name:      strings.TrimSpace(input.Name),
		Location:  input.Location,
		Status:    input.Status,
		CreatedAt: f.now(),
	}
	if facility.Name == "" {
		return nil, invalid("facility name is required")
	}
	if facility.Status == "" {
		facility.Status = models.FacilityStatusStopped
	}
	if !facility.Status.IsValid() {
		return nil, invalid("unknown facility status %q", facility.Status)
	}

	if err := f.Db.Conn.WithContext(ctx).Create(&facility).Error; err != nil {
		return nil, err
	}

	logger.Info("Facility created", zap.Reflect("facility", facility))

	return &facility, nil
}

func (f *Factory) getFacility(ctx context.Context, facilityID uint) (*models.Facility, error) {
	var facility models.Facility
	if err := f.Db.Conn.WithContext(ctx).First(&facility, facilityID).Error; err != nil {
		return nil, mapRecordErr(err, "facility", facilityID)
	}
	return &facility, nil
}

func (f *Factory) listFacilities(ctx context.Context) ([]models.Facility, error) {
	var facilities []models.Facility
	err := f.Db.Conn.WithContext(ctx).Order("id").Find(&facilities).Error
	return facilities, err
}

// updateStatus starts or stops monitoring for all sensors of the facility.
func (f *Factory) updateStatus(ctx context.Context, facilityID uint, status models.FacilityStatus) (*models.Facility, error) {
	if !status.IsValid() {
		return nil, invalid("unknown facility status %q", status)
	}

	facility, err := f.getFacility(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	previous := facility.Status
	if err := f.Db.Conn.WithContext(ctx).Model(facility).Update("status", status).Error; err != nil {
		return nil, err
	}
	facility.Status = status

	logger := common.GetCategoryLogger(common.LoggerNameFactoryCore, common.LoggerCategoryFacility)
	logger.Info("Facility status changed",
		zap.Uint("facility_id", facilityID),
		zap.String("from", string(previous)),
		zap.String("to", string(status)),
	)

	return facility, nil
}

type IFacilityImpl struct {
	factory *Factory
}

func (ifc *IFacilityImpl) CreateFacility(ctx context.Context, input *models.Facility) (*models.Facility, error) {
	return ifc.factory.createFacility(ctx, input)
}

func (ifc *IFacilityImpl) GetFacility(ctx context.Context, facilityID uint) (*models.Facility, error) {
	return ifc.factory.getFacility(ctx, facilityID)
}

func (ifc *IFacilityImpl) ListFacilities(ctx context.Context) ([]models.Facility, error) {
	return ifc.factory.listFacilities(ctx)
}

func (ifc *IFacilityImpl) UpdateStatus(ctx context.Context, facilityID uint, status models.FacilityStatus) (*models.Facility, error) {
	return ifc.factory.updateStatus(ctx, facilityID, status)
}

func (f *Factory) GetIFacility() IFacility {
	return &IFacilityImpl{factory: f}
}
