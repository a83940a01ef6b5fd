package factory

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
)

// The user directory is a read mostly collaborator. CreateUser exists for
// seeding; account management lives elsewhere.

func (f *Factory) createUser(ctx context.Context, input *models.User) (*models.User, error) {
	user := *input
	user.ID = 0
	if user.Username == "" {
		return nil, invalid("username is required")
	}
	switch user.Role {
	case models.RoleAdmin, models.RoleManager, models.RoleOperator:
	default:
		return nil, invalid("unknown role %q", user.Role)
	}

	if err := f.Db.Conn.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	logger := common.GetCategoryLogger(common.LoggerNameFactoryCore, common.LoggerCategoryUser)
	logger.Info("User created", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))

	return &user, nil
}

func (f *Factory) activeUsers(ctx context.Context, roles []models.Role) ([]models.User, error) {
	var users []models.User
	if len(roles) == 0 {
		return users, nil
	}
	err := f.Db.Conn.WithContext(ctx).
		Where("active = ? AND role IN ?", true, roles).
		Order("id").
		Find(&users).Error
	return users, err
}

func (f *Factory) getActiveUserIDsByRole(ctx context.Context, roles ...models.Role) ([]string, error) {
	users, err := f.activeUsers(ctx, roles)
	if err != nil {
		return nil, err
	}
	return common.Mapper(users, func(u models.User) string { return strconv.FormatUint(uint64(u.ID), 10) }), nil
}

func (f *Factory) getActiveEmailsByRole(ctx context.Context, roles ...models.Role) ([]string, error) {
	users, err := f.activeUsers(ctx, roles)
	if err != nil {
		return nil, err
	}
	withEmail := common.Filter(users, func(u models.User) bool { return u.Email != "" })
	return common.Mapper(withEmail, func(u models.User) string { return u.Email }), nil
}

// getEmergencyPhoneNumbers returns the phones of active managers.
func (f *Factory) getEmergencyPhoneNumbers(ctx context.Context) ([]string, error) {
	users, err := f.activeUsers(ctx, []models.Role{models.RoleManager})
	if err != nil {
		return nil, err
	}
	withPhone := common.Filter(users, func(u models.User) bool { return u.Phone != "" })
	return common.Mapper(withPhone, func(u models.User) string { return u.Phone }), nil
}

type IUserImpl struct {
	factory *Factory
}

func (iu *IUserImpl) CreateUser(ctx context.Context, input *models.User) (*models.User, error) {
	return iu.factory.createUser(ctx, input)
}

func (iu *IUserImpl) GetActiveUserIDsByRole(ctx context.Context, roles ...models.Role) ([]string, error) {
	return iu.factory.getActiveUserIDsByRole(ctx, roles...)
}

func (iu *IUserImpl) GetActiveEmailsByRole(ctx context.Context, roles ...models.Role) ([]string, error) {
	return iu.factory.getActiveEmailsByRole(ctx, roles...)
}

func (iu *IUserImpl) GetEmergencyPhoneNumbers(ctx context.Context) ([]string, error) {
	return iu.factory.getEmergencyPhoneNumbers(ctx)
}

func (f *Factory) GetIUser() IUser {
	return &IUserImpl{factory: f}
}
