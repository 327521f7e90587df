package user

import (
	"context"

	"gorm.io/gorm"

	"tips-service/internal/models"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// UpdateProfile writes the editable profile fields, returning the number
	// of rows touched so callers can tell a vanished user apart.
	UpdateProfile(ctx context.Context, userID uint, name, country, bio string) (int64, error)
	// Search filters users by substring on username, name and country. Empty
	// filters match everything.
	Search(ctx context.Context, username, name, country string) ([]*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID uint, name, country, bio string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"name":    name,
			"country": country,
			"bio":     bio,
		})
	return res.RowsAffected, res.Error
}

func (r *userRepository) Search(ctx context.Context, username, name, country string) ([]*models.User, error) {
	query := r.db.WithContext(ctx).Model(&models.User{})
	if username != "" {
		query = query.Where("username LIKE ?", "%"+username+"%")
	}
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if country != "" {
		query = query.Where("country LIKE ?", "%"+country+"%")
	}

	var users []*models.User
	err := query.Find(&users).Error
	return users, err
}
