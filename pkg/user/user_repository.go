package user

import (
	"context"
	"errors"
	"time"

	"SmartCart-Backend/domain"
	"SmartCart-Backend/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUserWithProfile(ctx context.Context, user *entities.User, profile *entities.Profile) error
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		ConfirmEmail(ctx context.Context, id string, at time.Time) error
		GetProfile(ctx context.Context, id string) (*entities.Profile, error)
		UpdateProfile(ctx context.Context, id string, fields map[string]any) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUserWithProfile writes the user and its empty profile row together.
func (r *userRepository) CreateUserWithProfile(ctx context.Context, user *entities.User, profile *entities.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrEmailAlreadyRegistered
			}
			return err
		}
		profile.ID = user.ID
		return tx.Create(profile).Error
	})
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ConfirmEmail(ctx context.Context, id string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", id).
		Update("email_confirmed_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	var profile entities.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile patches only the columns present in fields.
func (r *userRepository) UpdateProfile(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return domain.ErrEmptyProfileUpdate
	}
	res := r.db.WithContext(ctx).Model(&entities.Profile{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
