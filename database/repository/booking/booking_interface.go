package bookingRepo

import "turfhub/models"

// BookingRepository defines persistence for slot bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	SetStatus(id, status string) error
	// ExistsForSlot reports whether a confirmed booking already occupies the
	// slot starting at start minutes on the given date.
	ExistsForSlot(turfID, date string, start int) (bool, error)
	// BookedStarts returns the start minutes of all confirmed bookings for a
	// turf on one date.
	BookedStarts(turfID, date string) ([]int, error)
	ListByUser(userID string, params models.ListParams) (*models.Page[models.Booking], error)
	ListByTurf(turfID string, params models.ListParams) (*models.Page[models.Booking], error)
}
