package user

import (
	userRepo "turfhub/database/repository/user"
	"turfhub/models"
)

// UserService defines business logic for account operations.
type UserService interface {
	// RegisterUser validates the signup payload and creates a new account.
	RegisterUser(reg models.UserRegistration) (*models.AuthResponse, error)
	// AuthenticateUser verifies credentials and returns a fresh token.
	AuthenticateUser(email, password string) (*models.AuthResponse, error)
	// GetUserByID retrieves a user (safe view) by its unique ID.
	GetUserByID(userID string) (*models.User, error)
	// GetUserByEmail retrieves a user (safe view) by its email.
	GetUserByEmail(email string) (*models.User, error)
	// UpdateProfile updates name/phone of an existing account.
	UpdateProfile(userID string, name, phone string) (*models.User, error)
	// UpdateUserPassword verifies the current password and sets a new one.
	UpdateUserPassword(userID, currentPassword, newPassword string) error
	// DeleteUser removes an account.
	DeleteUser(userID string) error
	// RevokeUserAuthToken revokes the user's authentication token (logout).
	RevokeUserAuthToken(userID string) error
	// UpdateFCMToken stores the push token for the account's device.
	UpdateFCMToken(userID, token string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
