package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tips-service/internal/models"
)

type fakeAuthRepo struct {
	users  map[string]*models.User // keyed by email
	nextID uint
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{users: make(map[string]*models.User), nextID: 1}
}

func (r *fakeAuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.Email] = user
	return nil
}

func (r *fakeAuthRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, assert.AnError
	}
	return u, nil
}

func (r *fakeAuthRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

const testSecret = "test-secret"

func newTestAuthService(repo AuthRepository) AuthService {
	return NewAuthService(repo, testSecret, time.Hour)
}

func TestRegister(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestAuthService(repo)

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "wanderer",
		Email:    "w@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "wanderer", resp.User.Username)
	assert.NotEmpty(t, resp.Token)

	stored := repo.users["w@example.com"]
	require.NotNil(t, stored)

	// Password is stored hashed, never in the clear
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))

	// New accounts start from a clean slate
	assert.Empty(t, stored.HelpfulPosts)
	assert.Empty(t, stored.UnhelpfulPosts)
	assert.Zero(t, stored.Reputation)
}

func TestRegisterDuplicate(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{
		Username: "wanderer", Email: "w@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	// Same email
	_, err = svc.Register(ctx, &models.RegisterRequest{
		Username: "other", Email: "w@example.com", Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	// Same username
	_, err = svc.Register(ctx, &models.RegisterRequest{
		Username: "wanderer", Email: "other@example.com", Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{
		Username: "wanderer", Email: "w@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &models.LoginRequest{Email: "w@example.com", Password: "hunter22"})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "wanderer", claims["username"])
	assert.EqualValues(t, 1, claims["user_id"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{
		Username: "wanderer", Email: "w@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "w@example.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeAuthRepo())

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "ghost@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
