package rules

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"turfhub/models"
	"turfhub/utils"

	"go.uber.org/zap"
)

const rulesCacheTTL = 5 * time.Minute

func rulesCacheKey(turfID string) string {
	return "rules:" + turfID
}

func (s *DefaultRulesService) GetRules(turfID string) (*models.RulesConfig, error) {
	cache := utils.GetCacheClient()
	ctx := context.Background()

	if data, err := cache.Get(ctx, rulesCacheKey(turfID)).Result(); err == nil {
		var config models.RulesConfig
		if err := json.Unmarshal([]byte(data), &config); err == nil {
			return &config, nil
		}
	}

	config, err := s.Repo.GetByTurfID(turfID)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, ErrNoRules
	}

	if data, err := json.Marshal(config); err == nil {
		if err := cache.Set(ctx, rulesCacheKey(turfID), data, rulesCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("GetRules: failed to cache rules", zap.Error(err))
		}
	}
	return config, nil
}

func (s *DefaultRulesService) SaveRules(ownerID string, config *models.RulesConfig) (*models.RulesConfig, error) {
	turf, err := s.TurfRepo.GetByID(config.TurfID)
	if err != nil {
		return nil, err
	}
	if turf == nil {
		return nil, fmt.Errorf("turf not found")
	}
	if turf.OwnerID != ownerID {
		return nil, fmt.Errorf("turf does not belong to this owner")
	}

	if problems := config.Validate(); len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	config.OwnerID = ownerID
	config.Normalize()
	if err := s.Repo.Replace(config); err != nil {
		return nil, err
	}

	// The stored document changed wholesale; drop the cached copy.
	if err := utils.GetCacheClient().Del(context.Background(), rulesCacheKey(config.TurfID)).Err(); err != nil {
		utils.GetLogger().Warn("SaveRules: failed to invalidate rules cache", zap.Error(err))
	}
	return config, nil
}

func (s *DefaultRulesService) WeekView(turfID string) (*WeekView, error) {
	config, err := s.GetRules(turfID)
	if err != nil {
		return nil, err
	}

	view := &WeekView{
		TurfID:       turfID,
		SlotDuration: config.SlotDuration,
		Price:        config.Price,
		Exceptions:   config.Exceptions,
	}
	for day := 0; day < 7; day++ {
		view.Days[day] = DayView{
			Day:       day,
			DayName:   models.DayName(day),
			Slots:     config.PreviewSlots(day),
			OpenHours: config.DayOpenHours(day),
		}
	}
	return view, nil
}

func (s *DefaultRulesService) AvailableSlots(turfID, date string) ([]models.AvailableSlot, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}

	config, err := s.GetRules(turfID)
	if err != nil {
		return nil, err
	}
	if config.IsExceptionDate(date) {
		return nil, nil
	}

	booked, err := s.BookingRepo.BookedStarts(turfID, date)
	if err != nil {
		return nil, err
	}
	bookedSet := make(map[int]bool, len(booked))
	for _, start := range booked {
		bookedSet[start] = true
	}

	day := int(parsed.Weekday())
	var slots []models.AvailableSlot
	for _, preview := range config.PreviewSlots(day) {
		start, err := models.MinutesOfDay(preview.StartTime)
		if err != nil {
			continue
		}
		end, err := models.MinutesOfDay(preview.EndTime)
		if err != nil {
			continue
		}
		slots = append(slots, models.AvailableSlot{
			TurfID:    turfID,
			Date:      date,
			StartTime: preview.StartTime,
			EndTime:   preview.EndTime,
			Start:     start,
			End:       end,
			Price:     config.Price,
			Booked:    bookedSet[start],
		})
	}
	return slots, nil
}
