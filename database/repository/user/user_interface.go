package userRepo

import "turfhub/models"

// UserRepository defines persistence for platform accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id string) error
	UpdateTokenHash(id, tokenHash string) error
	UpdateFCMToken(id, token string) error
	SetStatus(id, status string) error
	// List returns a page of users filtered by role/status with a
	// case-insensitive search over name and email.
	List(params models.ListParams, role string) (*models.Page[models.User], error)
}
