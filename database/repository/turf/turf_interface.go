package turfRepo

import "turfhub/models"

// TurfRepository defines persistence for turf listings.
type TurfRepository interface {
	Create(turf *models.Turf) error
	GetByID(id string) (*models.Turf, error)
	Update(turf *models.Turf) error
	Delete(id string) error
	SetStatus(id, status, reason string) error
	// List returns a page of turfs. ownerID narrows to one owner's turfs;
	// params.Status filters verification status; params.Search matches
	// name/location/sports case-insensitively.
	List(params models.ListParams, ownerID string) (*models.Page[models.Turf], error)
}
