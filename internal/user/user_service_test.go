package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tips-service/internal/models"
)

type fakeUserRepo struct {
	users map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, assert.AnError
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, userID uint, name, country, bio string) (int64, error) {
	u, ok := r.users[userID]
	if !ok {
		return 0, nil
	}
	u.Name = name
	u.Country = country
	u.Bio = bio
	return 1, nil
}

func (r *fakeUserRepo) Search(ctx context.Context, username, name, country string) ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.users {
		if username != "" && !strings.Contains(u.Username, username) {
			continue
		}
		if name != "" && !strings.Contains(u.Name, name) {
			continue
		}
		if country != "" && !strings.Contains(u.Country, country) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func seedUser(r *fakeUserRepo, id uint, username string) *models.User {
	u := &models.User{Username: username, Reputation: 3}
	u.ID = id
	r.users[id] = u
	return u
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, 1, "wanderer")
	svc := NewUserService(repo)

	err := svc.UpdateProfile(context.Background(), 1, &models.UpdateProfileRequest{
		Name:    "Ana",
		Country: "Portugal",
		Bio:     "slow traveler",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", repo.users[1].Name)
	assert.Equal(t, "Portugal", repo.users[1].Country)
	assert.Equal(t, "slow traveler", repo.users[1].Bio)
}

func TestUpdateProfileMissingUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	err := svc.UpdateProfile(context.Background(), 99, &models.UpdateProfileRequest{
		Name: "Ana", Country: "Portugal", Bio: "x",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetProfile(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, 1, "wanderer")
	svc := NewUserService(repo)

	profile, err := svc.GetProfile(context.Background(), "wanderer")
	require.NoError(t, err)
	assert.Equal(t, "wanderer", profile.Username)
	assert.Equal(t, 3, profile.Reputation)

	_, err = svc.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSearch(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, 1, "wanderer")
	u := seedUser(repo, 2, "homebody")
	u.Country = "Japan"
	svc := NewUserService(repo)

	results, err := svc.Search(context.Background(), "wander", "", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "wanderer", results[0].Username)

	results, err = svc.Search(context.Background(), "", "", "Japan")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "homebody", results[0].Username)

	results, err = svc.Search(context.Background(), "nobody", "", "")
	require.NoError(t, err)
	assert.Empty(t, results)
}
