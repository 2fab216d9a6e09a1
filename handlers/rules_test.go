package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"turfhub/models"
	"turfhub/services/rules"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRulesService struct{ mock.Mock }

func (m *mockRulesService) GetRules(turfID string) (*models.RulesConfig, error) {
	args := m.Called(turfID)
	if v := args.Get(0); v != nil {
		return v.(*models.RulesConfig), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRulesService) SaveRules(ownerID string, config *models.RulesConfig) (*models.RulesConfig, error) {
	args := m.Called(ownerID, config)
	if v := args.Get(0); v != nil {
		return v.(*models.RulesConfig), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRulesService) WeekView(turfID string) (*rules.WeekView, error) {
	args := m.Called(turfID)
	if v := args.Get(0); v != nil {
		return v.(*rules.WeekView), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRulesService) AvailableSlots(turfID, date string) ([]models.AvailableSlot, error) {
	args := m.Called(turfID, date)
	if v := args.Get(0); v != nil {
		return v.([]models.AvailableSlot), args.Error(1)
	}
	return nil, args.Error(1)
}

// fakeAuth stands in for the JWT middleware.
func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func rulesRouter(svc rules.RulesService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &RulesHandler{RulesService: svc}
	r := gin.New()
	r.GET("/api/owner/turfs/:id/rules", fakeAuth("owner-1"), h.GetRulesHandler)
	r.PUT("/api/owner/turfs/:id/rules", fakeAuth("owner-1"), h.SaveRulesHandler)
	r.GET("/api/turfs/:id/week", h.WeekViewHandler)
	r.GET("/api/turfs/:id/slots", h.AvailableSlotsHandler)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetRulesHandlerNoRulesIsCallToAction(t *testing.T) {
	svc := new(mockRulesService)
	svc.On("GetRules", "turf-1").Return(nil, rules.ErrNoRules)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/owner/turfs/turf-1/rules", nil)
	rulesRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["hasRules"])
	assert.NotEmpty(t, body["message"])
}

func TestSaveRulesHandlerReturnsProblems(t *testing.T) {
	svc := new(mockRulesService)
	svc.On("SaveRules", "owner-1", mock.AnythingOfType("*models.RulesConfig")).
		Return(nil, &rules.ValidationError{Problems: []string{
			"Monday: start time 10:00 must be before end time 09:00",
			"slot duration must be greater than zero",
		}})

	payload, _ := json.Marshal(models.RulesConfig{SlotDuration: 0})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/owner/turfs/turf-1/rules", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rulesRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	problems, ok := body["problems"].([]any)
	require.True(t, ok)
	assert.Len(t, problems, 2)
}

func TestSaveRulesHandlerForcesPathTurfID(t *testing.T) {
	svc := new(mockRulesService)
	svc.On("SaveRules", "owner-1", mock.MatchedBy(func(config *models.RulesConfig) bool {
		return config.TurfID == "turf-1"
	})).Return(&models.RulesConfig{TurfID: "turf-1"}, nil)

	// Payload claims a different turf; the path wins.
	payload, _ := json.Marshal(models.RulesConfig{TurfID: "turf-999", SlotDuration: 1})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/owner/turfs/turf-1/rules", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rulesRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestWeekViewHandlerReturnsWeek(t *testing.T) {
	svc := new(mockRulesService)
	view := &rules.WeekView{TurfID: "turf-1", SlotDuration: 1, Price: 500}
	view.Days[6] = rules.DayView{Day: 6, DayName: "Saturday", OpenHours: 2}
	svc.On("WeekView", "turf-1").Return(view, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/turfs/turf-1/week", nil)
	rulesRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["hasRules"])
	week, ok := body["week"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "turf-1", week["turfId"])
}

func TestAvailableSlotsHandlerRequiresDate(t *testing.T) {
	svc := new(mockRulesService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/turfs/turf-1/slots", nil)
	rulesRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "AvailableSlots", mock.Anything, mock.Anything)
}

func TestAvailableSlotsHandlerReturnsEmptyArrayNotNull(t *testing.T) {
	svc := new(mockRulesService)
	svc.On("AvailableSlots", "turf-1", "2026-09-05").Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/turfs/turf-1/slots?date=2026-09-05", nil)
	rulesRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	slots, ok := body["slots"].([]any)
	require.True(t, ok)
	assert.Empty(t, slots)
}
