package wallet

import (
	"fmt"
	"time"

	"turfhub/models"
	"turfhub/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

func (s *DefaultWalletService) Balance(userID string) (float64, error) {
	return s.Repo.Balance(userID)
}

func (s *DefaultWalletService) Entries(userID string, params models.ListParams) (*models.Page[models.WalletEntry], error) {
	return s.Repo.ListByUser(userID, params)
}

func (s *DefaultWalletService) TopUp(userID string, input models.TopUpInput) (*models.TopUpIntent, error) {
	currency := input.Currency
	if currency == "" {
		currency = "inr"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(input.Amount * 100)),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("userId", userID)

	pi, err := paymentintent.New(params)
	if err != nil {
		utils.GetLogger().Error("TopUp: failed to create payment intent", zap.Error(err))
		return nil, fmt.Errorf("failed to initiate top-up, please try again")
	}

	return &models.TopUpIntent{
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
		Amount:          input.Amount,
		Currency:        currency,
	}, nil
}

func (s *DefaultWalletService) ConfirmTopUp(userID, paymentIntentID string) (*models.WalletEntry, error) {
	pi, err := paymentintent.Get(paymentIntentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to verify payment: %w", err)
	}
	if pi.Metadata["userId"] != userID {
		return nil, fmt.Errorf("payment does not belong to this user")
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, fmt.Errorf("payment has not succeeded yet (status %s)", pi.Status)
	}

	return s.Credit(userID, float64(pi.Amount)/100, "topup:"+paymentIntentID)
}

func (s *DefaultWalletService) Credit(userID string, amount float64, ref string) (*models.WalletEntry, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("credit amount must be positive")
	}
	entry := &models.WalletEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      models.WalletEntryCredit,
		Amount:    amount,
		Ref:       ref,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Insert(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *DefaultWalletService) Debit(userID string, amount float64, ref string) (*models.WalletEntry, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("debit amount must be positive")
	}
	balance, err := s.Repo.Balance(userID)
	if err != nil {
		return nil, err
	}
	if balance < amount {
		return nil, fmt.Errorf("insufficient wallet balance")
	}

	entry := &models.WalletEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      models.WalletEntryDebit,
		Amount:    amount,
		Ref:       ref,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Insert(entry); err != nil {
		return nil, err
	}
	return entry, nil
}
