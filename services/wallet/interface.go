package wallet

import (
	walletRepo "turfhub/database/repository/wallet"
	"turfhub/models"
)

// WalletService exposes the per-user ledger: reads, Stripe top-ups, and the
// credit/debit entry points the booking engine uses.
type WalletService interface {
	Balance(userID string) (float64, error)
	Entries(userID string, params models.ListParams) (*models.Page[models.WalletEntry], error)
	// TopUp creates a Stripe PaymentIntent for the amount; ConfirmTopUp
	// records the credit once the payment succeeded.
	TopUp(userID string, input models.TopUpInput) (*models.TopUpIntent, error)
	ConfirmTopUp(userID, paymentIntentID string) (*models.WalletEntry, error)
	// Credit and Debit append ledger rows. Debit fails without writing when
	// the balance does not cover the amount.
	Credit(userID string, amount float64, ref string) (*models.WalletEntry, error)
	Debit(userID string, amount float64, ref string) (*models.WalletEntry, error)
}

// DefaultWalletService is the production implementation.
type DefaultWalletService struct {
	Repo walletRepo.WalletRepository
}
