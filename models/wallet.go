package models

import "time"

// Wallet entry types.
const (
	WalletEntryCredit = "credit"
	WalletEntryDebit  = "debit"
)

// WalletEntry is one immutable row of a user's ledger. Balance is always the
// sum of entries, never stored on its own.
type WalletEntry struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Type      string    `bson:"type" json:"type"`
	Amount    float64   `bson:"amount" json:"amount"` // positive, Type gives the sign
	Ref       string    `bson:"ref,omitempty" json:"ref,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// TopUpInput requests a wallet top-up via Stripe.
type TopUpInput struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency"`
}

// TopUpIntent carries the client secret back to the caller.
type TopUpIntent struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}
