package models

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed reservation of one generated slot.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	TurfID    string    `bson:"turf_id" json:"turfId"`
	UserID    string    `bson:"user_id" json:"userId"`
	Date      string    `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Start     int       `bson:"start" json:"start"` // minutes from midnight
	End       int       `bson:"end" json:"end"`
	Price     float64   `bson:"price" json:"price"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// BookingInput selects a slot produced by the rules walk for a date.
type BookingInput struct {
	TurfID    string `json:"turfId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"` // "HH:MM", must match a generated slot start
}
