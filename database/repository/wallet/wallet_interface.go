package walletRepo

import "turfhub/models"

// WalletRepository defines persistence for the append-only wallet ledger.
type WalletRepository interface {
	Insert(entry *models.WalletEntry) error
	// Balance sums credits minus debits for a user.
	Balance(userID string) (float64, error)
	ListByUser(userID string, params models.ListParams) (*models.Page[models.WalletEntry], error)
}
