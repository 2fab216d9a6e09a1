package user

import (
	"context"
	"fmt"
	"time"

	"turfhub/models"
	"turfhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// authCacheTTL bounds how long a verified token hash is trusted without a
// database round trip.
const authCacheTTL = 15 * time.Minute

func (s *DefaultUserService) RegisterUser(reg models.UserRegistration) (*models.AuthResponse, error) {
	role := reg.Role
	switch role {
	case "", models.RoleUser:
		role = models.RoleUser
	case models.RoleOwner:
	default:
		return nil, fmt.Errorf("unsupported role %q", reg.Role)
	}

	existing, err := s.Repo.GetByEmail(reg.Email)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	rec := &models.User{
		ID:           uuid.New().String(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hash),
		Phone:        reg.Phone,
		Role:         role,
		Status:       models.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(rec); err != nil {
		return nil, err
	}

	return s.issueToken(rec)
}

func (s *DefaultUserService) AuthenticateUser(email, password string) (*models.AuthResponse, error) {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if rec.Status == models.UserStatusBlocked {
		return nil, fmt.Errorf("this account has been blocked")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(rec)
}

// issueToken signs a fresh JWT, persists its hash and caches it for the
// middleware fast path.
func (s *DefaultUserService) issueToken(rec *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(rec.ID, rec.Email, rec.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(rec.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	if err := authCache.Set(context.Background(), "authToken:"+rec.ID, tokenHash, authCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to cache token hash", zap.Error(err))
	}

	return &models.AuthResponse{
		ID:    rec.ID,
		Name:  rec.Name,
		Email: rec.Email,
		Role:  rec.Role,
		Token: token,
	}, nil
}

func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	rec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("user not found")
	}
	return safeView(rec), nil
}

func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("user not found")
	}
	return safeView(rec), nil
}

func (s *DefaultUserService) UpdateProfile(userID string, name, phone string) (*models.User, error) {
	rec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("user not found")
	}

	if name != "" {
		rec.Name = name
	}
	if phone != "" {
		rec.Phone = phone
	}
	if err := s.Repo.Update(rec); err != nil {
		return nil, err
	}
	return safeView(rec), nil
}

func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) error {
	rec, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("new password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	rec.PasswordHash = string(hash)
	if err := s.Repo.Update(rec); err != nil {
		return err
	}
	// Force re-authentication on other sessions.
	return s.RevokeUserAuthToken(userID)
}

func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.RevokeUserAuthToken(userID); err != nil {
		utils.GetLogger().Warn("DeleteUser: failed to revoke token", zap.Error(err))
	}
	return s.Repo.Delete(userID)
}

func (s *DefaultUserService) RevokeUserAuthToken(userID string) error {
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), "authToken:"+userID).Err(); err != nil {
		utils.GetLogger().Warn("RevokeUserAuthToken: failed to drop cached hash", zap.Error(err))
	}
	return s.Repo.UpdateTokenHash(userID, "")
}

func (s *DefaultUserService) UpdateFCMToken(userID, token string) error {
	return s.Repo.UpdateFCMToken(userID, token)
}

func safeView(rec *models.User) *models.User {
	out := *rec
	out.PasswordHash = ""
	out.TokenHash = ""
	out.FCMToken = ""
	return &out
}
