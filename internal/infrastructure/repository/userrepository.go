package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fixmate/internal/domain/user"
	"fixmate/internal/infrastructure/persistence/mappers"
	"fixmate/internal/infrastructure/persistence/models"
	apperrors "fixmate/internal/shared/errors"
	"fixmate/internal/shared/logger"
)

// UserRepository implements the user repository interface over gorm/SQLite.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// Create inserts a new user. A duplicate email is reported as
// user.ErrEmailAlreadyRegistered rather than a bare constraint error.
func (r *UserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return user.ErrEmailAlreadyRegistered
		}
		r.logger.Errorw("failed to create user", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := userEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}
	userEntity.SetCreatedAt(model.CreatedAt)

	r.logger.Infow("user created", "id", model.ID, "email", model.Email)
	return nil
}

// GetByEmail retrieves a user by normalized email. Returns nil when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map user model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map user: %w", err)
	}
	return entity, nil
}
