package user

import (
	"os"
	"testing"
	"time"

	"turfhub/models"
	"turfhub/utils"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Tests run without Redis; the auth cache calls fail fast and are only
// warn-logged.
func TestMain(m *testing.M) {
	dead := &redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1}
	utils.CacheClient = redis.NewClient(dead)
	utils.AuthCacheClient = redis.NewClient(dead)
	os.Exit(m.Run())
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(u *models.User) error { return m.Called(u).Error(0) }
func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) Update(u *models.User) error { return m.Called(u).Error(0) }
func (m *mockUserRepo) Delete(id string) error      { return m.Called(id).Error(0) }
func (m *mockUserRepo) UpdateTokenHash(id, tokenHash string) error {
	return m.Called(id, tokenHash).Error(0)
}
func (m *mockUserRepo) UpdateFCMToken(id, token string) error {
	return m.Called(id, token).Error(0)
}
func (m *mockUserRepo) SetStatus(id, status string) error {
	return m.Called(id, status).Error(0)
}
func (m *mockUserRepo) List(params models.ListParams, role string) (*models.Page[models.User], error) {
	args := m.Called(params, role)
	if v := args.Get(0); v != nil {
		return v.(*models.Page[models.User]), args.Error(1)
	}
	return nil, args.Error(1)
}

func hashed(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash)
}

func TestRegisterUserDefaultsToUserRole(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("GetByEmail", "sam@example.com").Return(nil, nil)
	repo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.RoleUser && u.Status == models.UserStatusActive
	})).Return(nil)
	repo.On("UpdateTokenHash", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.RegisterUser(models.UserRegistration{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleUser, resp.Role)
	repo.AssertExpectations(t)
}

func TestRegisterUserRejectsAdminRole(t *testing.T) {
	svc := &DefaultUserService{}

	_, err := svc.RegisterUser(models.UserRegistration{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "password123",
		Role:     models.RoleAdmin,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported role")
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("GetByEmail", "sam@example.com").Return(&models.User{ID: "u1"}, nil)

	_, err := svc.RegisterUser(models.UserRegistration{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAuthenticateUserHappyPath(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("GetByEmail", "sam@example.com").Return(&models.User{
		ID:           "u1",
		Email:        "sam@example.com",
		Role:         models.RoleUser,
		Status:       models.UserStatusActive,
		PasswordHash: hashed("password123"),
	}, nil)
	repo.On("UpdateTokenHash", "u1", mock.AnythingOfType("string")).Return(nil)

	resp, err := svc.AuthenticateUser("sam@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.ID)
	assert.NotEmpty(t, resp.Token)

	// The issued token round-trips through our own verifier.
	id, role, err := utils.ExtractClaimsFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", id)
	assert.Equal(t, models.RoleUser, role)
}

func TestAuthenticateUserRejectsWrongPassword(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("GetByEmail", "sam@example.com").Return(&models.User{
		ID:           "u1",
		Status:       models.UserStatusActive,
		PasswordHash: hashed("password123"),
	}, nil)

	_, err := svc.AuthenticateUser("sam@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestAuthenticateUserRejectsBlockedAccount(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("GetByEmail", "sam@example.com").Return(&models.User{
		ID:           "u1",
		Status:       models.UserStatusBlocked,
		PasswordHash: hashed("password123"),
	}, nil)

	_, err := svc.AuthenticateUser("sam@example.com", "password123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked")
}

func TestGetUserByIDStripsSecrets(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("GetByID", "u1").Return(&models.User{
		ID:           "u1",
		PasswordHash: "hash",
		TokenHash:    "hash",
		FCMToken:     "token",
	}, nil)

	usr, err := svc.GetUserByID("u1")
	require.NoError(t, err)
	assert.Empty(t, usr.PasswordHash)
	assert.Empty(t, usr.TokenHash)
	assert.Empty(t, usr.FCMToken)
}

func TestUpdateUserPasswordRevokesToken(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("GetByID", "u1").Return(&models.User{
		ID:           "u1",
		PasswordHash: hashed("old-password"),
	}, nil)
	repo.On("Update", mock.AnythingOfType("*models.User")).Return(nil)
	repo.On("UpdateTokenHash", "u1", "").Return(nil)

	require.NoError(t, svc.UpdateUserPassword("u1", "old-password", "new-password"))
	repo.AssertCalled(t, "UpdateTokenHash", "u1", "")
}

func TestUpdateUserPasswordRejectsWrongCurrent(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("GetByID", "u1").Return(&models.User{
		ID:           "u1",
		PasswordHash: hashed("old-password"),
	}, nil)

	err := svc.UpdateUserPassword("u1", "guess", "new-password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "current password is incorrect")
	repo.AssertNotCalled(t, "Update", mock.Anything)
}
