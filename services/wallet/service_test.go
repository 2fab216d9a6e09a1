package wallet

import (
	"testing"

	"turfhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockWalletRepo struct{ mock.Mock }

func (m *mockWalletRepo) Insert(entry *models.WalletEntry) error {
	return m.Called(entry).Error(0)
}
func (m *mockWalletRepo) Balance(userID string) (float64, error) {
	args := m.Called(userID)
	return args.Get(0).(float64), args.Error(1)
}
func (m *mockWalletRepo) ListByUser(userID string, params models.ListParams) (*models.Page[models.WalletEntry], error) {
	args := m.Called(userID, params)
	if v := args.Get(0); v != nil {
		return v.(*models.Page[models.WalletEntry]), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreditAppendsEntry(t *testing.T) {
	repo := new(mockWalletRepo)
	svc := &DefaultWalletService{Repo: repo}

	repo.On("Insert", mock.AnythingOfType("*models.WalletEntry")).Return(nil)

	entry, err := svc.Credit("user-1", 250, "topup:pi_123")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, models.WalletEntryCredit, entry.Type)
	assert.Equal(t, 250.0, entry.Amount)
	assert.Equal(t, "topup:pi_123", entry.Ref)
}

func TestCreditRejectsNonPositiveAmount(t *testing.T) {
	svc := &DefaultWalletService{}

	_, err := svc.Credit("user-1", 0, "ref")
	require.Error(t, err)
	_, err = svc.Credit("user-1", -5, "ref")
	require.Error(t, err)
}

func TestDebitChecksBalanceFirst(t *testing.T) {
	repo := new(mockWalletRepo)
	svc := &DefaultWalletService{Repo: repo}

	repo.On("Balance", "user-1").Return(100.0, nil)

	_, err := svc.Debit("user-1", 500, "booking:turf-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient wallet balance")
	repo.AssertNotCalled(t, "Insert", mock.Anything)
}

func TestDebitAppendsEntryWhenCovered(t *testing.T) {
	repo := new(mockWalletRepo)
	svc := &DefaultWalletService{Repo: repo}

	repo.On("Balance", "user-1").Return(1000.0, nil)
	repo.On("Insert", mock.AnythingOfType("*models.WalletEntry")).Return(nil)

	entry, err := svc.Debit("user-1", 500, "booking:turf-1")
	require.NoError(t, err)
	assert.Equal(t, models.WalletEntryDebit, entry.Type)
	assert.Equal(t, 500.0, entry.Amount)
}

func TestDebitAllowsExactBalance(t *testing.T) {
	repo := new(mockWalletRepo)
	svc := &DefaultWalletService{Repo: repo}

	repo.On("Balance", "user-1").Return(500.0, nil)
	repo.On("Insert", mock.AnythingOfType("*models.WalletEntry")).Return(nil)

	_, err := svc.Debit("user-1", 500, "booking:turf-1")
	require.NoError(t, err)
}
