package rules

import (
	bookingRepo "turfhub/database/repository/booking"
	rulesRepo "turfhub/database/repository/rules"
	turfRepo "turfhub/database/repository/turf"
	"turfhub/models"
)

// RulesService owns the weekly availability document of a turf: loading it,
// validating and persisting owner edits wholesale, and deriving display and
// booking views from it.
type RulesService interface {
	// GetRules returns the persisted config, or ErrNoRules when the turf has
	// none yet.
	GetRules(turfID string) (*models.RulesConfig, error)
	// SaveRules validates the whole document and replaces the stored one.
	// Validation failures come back as a ValidationError listing every
	// problem; the stored document is untouched in that case.
	SaveRules(ownerID string, config *models.RulesConfig) (*models.RulesConfig, error)
	// WeekView is the read path of the rules viewer: per-day slot previews,
	// per-day open-hour totals and the exception dates.
	WeekView(turfID string) (*WeekView, error)
	// AvailableSlots derives the bookable slots of a turf for one date:
	// the preview walk for that weekday, minus already-booked starts; empty
	// on exception dates.
	AvailableSlots(turfID, date string) ([]models.AvailableSlot, error)
}

// DayView is one weekday of the viewer response.
type DayView struct {
	Day       int                  `json:"day"`
	DayName   string               `json:"dayName"`
	Slots     []models.PreviewSlot `json:"slots"`
	OpenHours float64              `json:"openHours"`
}

// WeekView is the full viewer response.
type WeekView struct {
	TurfID       string             `json:"turfId"`
	Days         [7]DayView         `json:"days"`
	SlotDuration float64            `json:"slotDuration"`
	Price        float64            `json:"price"`
	Exceptions   []models.Exception `json:"exceptions"`
}

// DefaultRulesService is the production implementation.
type DefaultRulesService struct {
	Repo        rulesRepo.RulesRepository
	TurfRepo    turfRepo.TurfRepository
	BookingRepo bookingRepo.BookingRepository
}
