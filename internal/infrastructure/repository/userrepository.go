package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fixdesk/internal/domain/user"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	"fixdesk/internal/shared/db"
	apperrors "fixdesk/internal/shared/errors"
)

var _ user.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(gdb *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
	}
}

// Save inserts a new principal. The unique index on username is the authority
// on duplicates; its rejection surfaces as a conflict.
func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("username already exists", u.Username())
		}
		return translateStoreError(err, "failed to save user")
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, translateStoreError(err, "failed to find user")
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, translateStoreError(err, "failed to find user")
	}

	return r.mapper.ToDomain(&model)
}

// Update writes the mutable principal columns; username and created_at stay
// as registered.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("password_hash", "display_name", "role", "active").
		Updates(model)

	if result.Error != nil {
		return translateStoreError(result.Error, "failed to update user")
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}
