package mappers

import (
	"fixmate/internal/domain/user"
	"fixmate/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
}

type userMapper struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &userMapper{}
}

// ToEntity converts a persistence model to a domain entity
func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	return user.Reconstruct(model.ID, model.Name, model.Email, model.PasswordHash, model.CreatedAt)
}

// ToModel converts a domain entity to a persistence model
func (m *userMapper) ToModel(entity *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           entity.ID(),
		Name:         entity.Name(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		CreatedAt:    entity.CreatedAt(),
	}
}
