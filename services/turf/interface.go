package turf

import (
	turfRepo "turfhub/database/repository/turf"
	"turfhub/models"
	"turfhub/services/storage"
)

// TurfService defines owner-side turf management and public browsing.
type TurfService interface {
	// CreateTurf registers a new turf in "pending" verification status.
	CreateTurf(ownerID string, input models.TurfInput) (*models.Turf, error)
	// UpdateTurf edits an owner's turf. Material edits put the turf back
	// into "pending" until an admin re-verifies it.
	UpdateTurf(ownerID, turfID string, input models.TurfInput) (*models.Turf, error)
	DeleteTurf(ownerID, turfID string) error
	GetTurfByID(turfID string) (*models.Turf, error)
	// ListOwnerTurfs is the owner management table.
	ListOwnerTurfs(ownerID string, params models.ListParams) (*models.Page[models.Turf], error)
	// BrowseTurfs is the public search: only approved turfs, regardless of
	// the status filter the caller passes.
	BrowseTurfs(params models.ListParams) (*models.Page[models.Turf], error)
	// AttachImage uploads a local file and records its public ID on the turf.
	AttachImage(ownerID, turfID, localFilePath string) (*models.Turf, error)
}

// DefaultTurfService is the production implementation.
type DefaultTurfService struct {
	Repo    turfRepo.TurfRepository
	Storage storage.StorageService
}
