package models

import "time"

// Turf verification / moderation statuses.
const (
	TurfStatusPending  = "pending"
	TurfStatusApproved = "approved"
	TurfStatusRejected = "rejected"
	TurfStatusBlocked  = "blocked"
)

// Turf is a sports facility listed on the marketplace.
type Turf struct {
	ID           string    `bson:"id" json:"id"`
	OwnerID      string    `bson:"owner_id" json:"ownerId"`
	Name         string    `bson:"name" json:"name"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Location     string    `bson:"location" json:"location"`
	Sports       []string  `bson:"sports" json:"sports"` // e.g. "football", "cricket"
	PricePerHour float64   `bson:"price_per_hour" json:"pricePerHour"`
	Images       []string  `bson:"images,omitempty" json:"images,omitempty"` // storage public IDs
	Status       string    `bson:"status" json:"status"`
	RejectReason string    `bson:"reject_reason,omitempty" json:"rejectReason,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// TurfInput is the owner-side create/update payload.
type TurfInput struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Location     string   `json:"location" binding:"required"`
	Sports       []string `json:"sports" binding:"required,min=1"`
	PricePerHour float64  `json:"pricePerHour" binding:"required,gt=0"`
	Images       []string `json:"images"`
}
