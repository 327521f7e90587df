package user

import (
	"context"
	"errors"

	"tips-service/internal/models"
)

// Custom errors
var (
	ErrUserNotFound = errors.New("user not found")
)

type UserService interface {
	UpdateProfile(ctx context.Context, userID uint, req *models.UpdateProfileRequest) error
	GetProfile(ctx context.Context, username string) (*models.UserProfileResponse, error)
	Search(ctx context.Context, username, name, country string) ([]*models.UserProfileResponse, error)
}

type userService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, req *models.UpdateProfileRequest) error {
	rows, err := s.repo.UpdateProfile(ctx, userID, req.Name, req.Country, req.Bio)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *userService) GetProfile(ctx context.Context, username string) (*models.UserProfileResponse, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return profileResponse(user), nil
}

func (s *userService) Search(ctx context.Context, username, name, country string) ([]*models.UserProfileResponse, error) {
	users, err := s.repo.Search(ctx, username, name, country)
	if err != nil {
		return nil, err
	}

	results := make([]*models.UserProfileResponse, 0, len(users))
	for _, u := range users {
		results = append(results, profileResponse(u))
	}
	return results, nil
}

func profileResponse(u *models.User) *models.UserProfileResponse {
	return &models.UserProfileResponse{
		Username:   u.Username,
		Name:       u.Name,
		Country:    u.Country,
		Bio:        u.Bio,
		Reputation: u.Reputation,
	}
}
