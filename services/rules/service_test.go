package rules

import (
	"os"
	"testing"
	"time"

	"turfhub/models"
	"turfhub/utils"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Tests run without Redis; cache calls fail fast and the service falls
// through to the repositories.
func TestMain(m *testing.M) {
	dead := &redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1}
	utils.CacheClient = redis.NewClient(dead)
	utils.AuthCacheClient = redis.NewClient(dead)
	os.Exit(m.Run())
}

type mockRulesRepo struct{ mock.Mock }

func (m *mockRulesRepo) GetByTurfID(turfID string) (*models.RulesConfig, error) {
	args := m.Called(turfID)
	if v := args.Get(0); v != nil {
		return v.(*models.RulesConfig), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRulesRepo) Replace(config *models.RulesConfig) error {
	return m.Called(config).Error(0)
}
func (m *mockRulesRepo) Delete(turfID string) error { return m.Called(turfID).Error(0) }

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

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(b *models.Booking) error { return m.Called(b).Error(0) }
func (m *mockBookingRepo) GetByID(id string) (*models.Booking, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBookingRepo) SetStatus(id, status string) error {
	return m.Called(id, status).Error(0)
}
func (m *mockBookingRepo) ExistsForSlot(turfID, date string, start int) (bool, error) {
	args := m.Called(turfID, date, start)
	return args.Bool(0), args.Error(1)
}
func (m *mockBookingRepo) BookedStarts(turfID, date string) ([]int, error) {
	args := m.Called(turfID, date)
	if v := args.Get(0); v != nil {
		return v.([]int), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBookingRepo) ListByUser(userID string, params models.ListParams) (*models.Page[models.Booking], error) {
	args := m.Called(userID, params)
	if v := args.Get(0); v != nil {
		return v.(*models.Page[models.Booking]), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBookingRepo) ListByTurf(turfID string, params models.ListParams) (*models.Page[models.Booking], error) {
	args := m.Called(turfID, params)
	if v := args.Get(0); v != nil {
		return v.(*models.Page[models.Booking]), args.Error(1)
	}
	return nil, args.Error(1)
}

func weekConfig() *models.RulesConfig {
	config := &models.RulesConfig{
		TurfID:       "turf-1",
		OwnerID:      "owner-1",
		SlotDuration: 1,
		Price:        500,
	}
	// Saturday 2026-09-05: 09:00-11:00 yields two one-hour slots.
	config.Week()[6] = []models.TimeRange{{StartTime: "09:00", EndTime: "11:00"}}
	return config
}

func newService(repo *mockRulesRepo, turfs *mockTurfRepo, bookings *mockBookingRepo) *DefaultRulesService {
	return &DefaultRulesService{Repo: repo, TurfRepo: turfs, BookingRepo: bookings}
}

func TestGetRulesReturnsErrNoRules(t *testing.T) {
	repo := new(mockRulesRepo)
	svc := newService(repo, nil, nil)

	repo.On("GetByTurfID", "turf-1").Return(nil, nil)

	_, err := svc.GetRules("turf-1")
	assert.ErrorIs(t, err, ErrNoRules)
}

func TestSaveRulesRejectsForeignTurf(t *testing.T) {
	repo := new(mockRulesRepo)
	turfs := new(mockTurfRepo)
	svc := newService(repo, turfs, nil)

	turfs.On("GetByID", "turf-1").Return(&models.Turf{ID: "turf-1", OwnerID: "owner-1"}, nil)

	_, err := svc.SaveRules("intruder", weekConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong")
	repo.AssertNotCalled(t, "Replace", mock.Anything)
}

func TestSaveRulesReturnsEveryProblem(t *testing.T) {
	repo := new(mockRulesRepo)
	turfs := new(mockTurfRepo)
	svc := newService(repo, turfs, nil)

	turfs.On("GetByID", "turf-1").Return(&models.Turf{ID: "turf-1", OwnerID: "owner-1"}, nil)

	bad := weekConfig()
	bad.SlotDuration = 0
	bad.Week()[1] = []models.TimeRange{
		{StartTime: "10:00", EndTime: "09:00"},
		{StartTime: "", EndTime: "12:00"},
	}

	_, err := svc.SaveRules("owner-1", bad)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 3)
	repo.AssertNotCalled(t, "Replace", mock.Anything)
}

func TestSaveRulesNormalizesAndReplaces(t *testing.T) {
	repo := new(mockRulesRepo)
	turfs := new(mockTurfRepo)
	svc := newService(repo, turfs, nil)

	turfs.On("GetByID", "turf-1").Return(&models.Turf{ID: "turf-1", OwnerID: "owner-1"}, nil)
	repo.On("Replace", mock.AnythingOfType("*models.RulesConfig")).Return(nil)

	config := weekConfig()
	config.AddException("2026-12-25")
	config.AddException("2026-12-25")

	saved, err := svc.SaveRules("owner-1", config)
	require.NoError(t, err)
	assert.Len(t, saved.Exceptions, 1)
	assert.Equal(t, "owner-1", saved.OwnerID)
	repo.AssertExpectations(t)
}

func TestWeekViewBuildsAllSevenDays(t *testing.T) {
	repo := new(mockRulesRepo)
	svc := newService(repo, nil, nil)

	repo.On("GetByTurfID", "turf-1").Return(weekConfig(), nil)

	view, err := svc.WeekView("turf-1")
	require.NoError(t, err)
	assert.Equal(t, "Sunday", view.Days[0].DayName)
	assert.Equal(t, "Saturday", view.Days[6].DayName)
	assert.Len(t, view.Days[6].Slots, 2)
	assert.Empty(t, view.Days[0].Slots)
	assert.Equal(t, 2.0, view.Days[6].OpenHours)
}

func TestAvailableSlotsMarksBookedStarts(t *testing.T) {
	repo := new(mockRulesRepo)
	bookings := new(mockBookingRepo)
	svc := newService(repo, nil, bookings)

	repo.On("GetByTurfID", "turf-1").Return(weekConfig(), nil)
	bookings.On("BookedStarts", "turf-1", "2026-09-05").Return([]int{540}, nil)

	slots, err := svc.AvailableSlots("turf-1", "2026-09-05")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].Booked)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.False(t, slots[1].Booked)
	assert.Equal(t, 500.0, slots[1].Price)
}

func TestAvailableSlotsEmptyOnExceptionDate(t *testing.T) {
	repo := new(mockRulesRepo)
	svc := newService(repo, nil, nil)

	config := weekConfig()
	config.AddException("2026-09-05")
	repo.On("GetByTurfID", "turf-1").Return(config, nil)

	slots, err := svc.AvailableSlots("turf-1", "2026-09-05")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsRejectsBadDate(t *testing.T) {
	svc := newService(nil, nil, nil)

	_, err := svc.AvailableSlots("turf-1", "05-09-2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}
