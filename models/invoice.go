package models

import "time"

// Invoice represents the billing aggregate for one booking.
type Invoice struct {
	InvoiceID     string    `bson:"invoice_id" json:"invoice_id"`
	BookingID     string    `bson:"booking_id" json:"booking_id"`
	TurfID        string    `bson:"turf_id" json:"turf_id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	Amount        float64   `bson:"amount" json:"amount"`
	PaymentMethod string    `bson:"payment_method" json:"payment_method"` // e.g. "wallet"
	Status        string    `bson:"status" json:"status"`                 // e.g. "paid", "refunded"
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// InvoiceReport is the aggregate the invoice page renders. It arrives either
// from the invoice read endpoint or URL-encoded in a "data" query parameter,
// and is optionally enriched with the turf's details.
type InvoiceReport struct {
	Invoice Invoice `json:"invoice"`
	Turf    *Turf   `json:"turf,omitempty"`
}
