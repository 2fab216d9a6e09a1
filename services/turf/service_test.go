package turf

import (
	"context"
	"testing"
	"time"

	"turfhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTurfRepo struct{ mock.Mock }

func (m *mockTurfRepo) Create(t *models.Turf) error { return m.Called(t).Error(0) }
func (m *mockTurfRepo) GetByID(id string) (*models.Turf, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Turf), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockTurfRepo) Update(t *models.Turf) error { return m.Called(t).Error(0) }
func (m *mockTurfRepo) Delete(id string) error      { return m.Called(id).Error(0) }
func (m *mockTurfRepo) SetStatus(id, status, reason string) error {
	return m.Called(id, status, reason).Error(0)
}
func (m *mockTurfRepo) List(params models.ListParams, ownerID string) (*models.Page[models.Turf], error) {
	args := m.Called(params, ownerID)
	if v := args.Get(0); v != nil {
		return v.(*models.Page[models.Turf]), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockStorage struct{ mock.Mock }

func (m *mockStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	args := m.Called(ctx, localFilePath, destFolder)
	return args.String(0), args.Error(1)
}
func (m *mockStorage) DeleteFile(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}
func (m *mockStorage) GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	args := m.Called(ctx, resourceType, publicID, expires)
	return args.String(0), args.Error(1)
}

func turfInput() models.TurfInput {
	return models.TurfInput{
		Name:         "Greenfield Arena",
		Location:     "Indiranagar",
		Sports:       []string{"football"},
		PricePerHour: 500,
	}
}

func TestCreateTurfStartsPending(t *testing.T) {
	repo := new(mockTurfRepo)
	svc := &DefaultTurfService{Repo: repo}

	repo.On("Create", mock.MatchedBy(func(rec *models.Turf) bool {
		return rec.Status == models.TurfStatusPending && rec.OwnerID == "owner-1"
	})).Return(nil)

	rec, err := svc.CreateTurf("owner-1", turfInput())
	require.NoError(t, err)
	assert.Equal(t, models.TurfStatusPending, rec.Status)
	repo.AssertExpectations(t)
}

func TestUpdateTurfResetsApprovedToPending(t *testing.T) {
	repo := new(mockTurfRepo)
	svc := &DefaultTurfService{Repo: repo}

	repo.On("GetByID", "turf-1").Return(&models.Turf{
		ID: "turf-1", OwnerID: "owner-1", Status: models.TurfStatusApproved,
	}, nil)
	repo.On("Update", mock.AnythingOfType("*models.Turf")).Return(nil)

	rec, err := svc.UpdateTurf("owner-1", "turf-1", turfInput())
	require.NoError(t, err)
	assert.Equal(t, models.TurfStatusPending, rec.Status)
}

func TestUpdateTurfRejectsForeignOwner(t *testing.T) {
	repo := new(mockTurfRepo)
	svc := &DefaultTurfService{Repo: repo}

	repo.On("GetByID", "turf-1").Return(&models.Turf{
		ID: "turf-1", OwnerID: "owner-1",
	}, nil)

	_, err := svc.UpdateTurf("intruder", "turf-1", turfInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong")
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestDeleteTurfRemovesImages(t *testing.T) {
	repo := new(mockTurfRepo)
	store := new(mockStorage)
	svc := &DefaultTurfService{Repo: repo, Storage: store}

	repo.On("GetByID", "turf-1").Return(&models.Turf{
		ID: "turf-1", OwnerID: "owner-1", Images: []string{"turfs/turf-1/a", "turfs/turf-1/b"},
	}, nil)
	store.On("DeleteFile", mock.Anything, "turfs/turf-1/a").Return(nil)
	store.On("DeleteFile", mock.Anything, "turfs/turf-1/b").Return(nil)
	repo.On("Delete", "turf-1").Return(nil)

	require.NoError(t, svc.DeleteTurf("owner-1", "turf-1"))
	store.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestBrowseTurfsPinsApprovedStatus(t *testing.T) {
	repo := new(mockTurfRepo)
	svc := &DefaultTurfService{Repo: repo}

	repo.On("List", mock.MatchedBy(func(params models.ListParams) bool {
		return params.Status == models.TurfStatusApproved
	}), "").Return(&models.Page[models.Turf]{}, nil)

	// The caller's status filter is overridden for public browsing.
	_, err := svc.BrowseTurfs(models.ListParams{Status: models.TurfStatusPending})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAttachImageRecordsPublicID(t *testing.T) {
	repo := new(mockTurfRepo)
	store := new(mockStorage)
	svc := &DefaultTurfService{Repo: repo, Storage: store}

	repo.On("GetByID", "turf-1").Return(&models.Turf{
		ID: "turf-1", OwnerID: "owner-1",
	}, nil)
	store.On("UploadFile", mock.Anything, "/tmp/pitch.jpg", "turfs/turf-1").
		Return("turfs/turf-1/pitch", nil)
	repo.On("Update", mock.AnythingOfType("*models.Turf")).Return(nil)

	rec, err := svc.AttachImage("owner-1", "turf-1", "/tmp/pitch.jpg")
	require.NoError(t, err)
	assert.Contains(t, rec.Images, "turfs/turf-1/pitch")
}
