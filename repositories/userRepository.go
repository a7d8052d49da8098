package repositories

import (
	"DentalDesk/database"
	"DentalDesk/models"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository interface {
	UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetActiveUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID string) error
	UpdateUserPassword(ctx context.Context, userID, passwordHash string) error
	GetAllUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userRepository struct {
	store *database.Store
}

func NewUserRepository(store *database.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error) {
	db, err := r.store.DB()
	if err != nil {
		return false, err
	}

	var count int64
	err = db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check username/email existence")
	}
	return count > 0, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrap(err, "failed to create user")
	}
	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return r.getOne(ctx, "id = ?", userID)
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, "username = ?", username)
}

// GetActiveUserByUsername only matches accounts that have not been
// deactivated; used by the login path.
func (r *userRepository) GetActiveUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, "username = ? AND is_active = ?", username, true)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, "email = ?", email)
}

func (r *userRepository) getOne(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var user models.User
	err = db.WithContext(ctx).Where(query, args...).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get user")
	}
	return &user, nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, userID string) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}
	now := time.Now()
	return db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"last_login": now,
			"updated_at": now,
		}).Error
}

func (r *userRepository) UpdateUserPassword(ctx context.Context, userID, passwordHash string) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		}).Error
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var users []models.User
	err = db.WithContext(ctx).
		Select("id, username, email, role, first_name, last_name, phone, is_active, last_login, created_at, updated_at").
		Order("username").
		Find(&users).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to get all users")
	}
	return users, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&models.User{}, "id = ?", userID).Error
}
