package mappers

import (
	"fixdesk/internal/domain/user"
	"fixdesk/internal/infrastructure/persistence/models"
	"fixdesk/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		DisplayName:  u.DisplayName(),
		Role:         u.Role().String(),
		Active:       u.IsActive(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.PasswordHash,
		model.DisplayName,
		authorization.ParseUserRole(model.Role),
		model.Active,
		millisToTime(model.CreatedAt),
	)
}
