package admin

import (
	turfRepo "turfhub/database/repository/turf"
	userRepo "turfhub/database/repository/user"
	"turfhub/models"
	"turfhub/services/notification"
)

// AdminService covers the moderation surface: account and listing reviews,
// turf verification, and blocking.
type AdminService interface {
	ListUsers(params models.ListParams) (*models.Page[models.User], error)
	ListOwners(params models.ListParams) (*models.Page[models.User], error)
	// ListTurfs sees every status, unlike the public browse which is pinned
	// to approved.
	ListTurfs(params models.ListParams) (*models.Page[models.Turf], error)
	ApproveTurf(turfID string) error
	// RejectTurf requires a reason; it is shown to the owner.
	RejectTurf(turfID, reason string) error
	BlockTurf(turfID, reason string) error
	BlockUser(userID string) error
	UnblockUser(userID string) error
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	UserRepo     userRepo.UserRepository
	TurfRepo     turfRepo.TurfRepository
	Notification notification.NotificationService
}
