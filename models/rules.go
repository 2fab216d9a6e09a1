package models

import (
	"fmt"
	"time"
)

// TimeRange is one open window within a day, as wall-clock "HH:MM" strings
// with no timezone. A valid range has StartTime strictly before EndTime.
type TimeRange struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// WeekRules maps weekday index (0=Sunday .. 6=Saturday) to that day's
// ordered open ranges.
type WeekRules [7][]TimeRange

// Exception marks a calendar date ("YYYY-MM-DD") on which the turf is fully
// closed regardless of the weekly rules.
type Exception struct {
	Date string `bson:"date" json:"date"`
}

// RulesConfig is the recurring availability document for one turf. It is an
// owned value object: loaded whole, edited locally, persisted whole
// (replace-all) on save. The wire contract wraps the week in a one-element
// weeklyRules array.
type RulesConfig struct {
	TurfID       string      `bson:"turfId" json:"turfId"`
	OwnerID      string      `bson:"ownerId" json:"ownerId"`
	WeeklyRules  []WeekRules `bson:"weeklyRules" json:"weeklyRules"`
	SlotDuration float64     `bson:"slotDuration" json:"slotDuration"` // hours, fractional allowed
	Price        float64     `bson:"price" json:"price"`
	Exceptions   []Exception `bson:"exceptions" json:"exceptions"`
}

// PreviewSlot is a derived, display-only sub-interval of a TimeRange. It is
// regenerated from the current rules on demand and never persisted.
type PreviewSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DayName returns the English weekday name for a 0=Sunday..6=Saturday index.
func DayName(day int) string {
	if day < 0 || day > 6 {
		return fmt.Sprintf("day %d", day)
	}
	return dayNames[day]
}

// MinutesOfDay parses an "HH:MM" wall-clock string into minutes from midnight.
func MinutesOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", hhmm)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders minutes from midnight back into "HH:MM".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Week returns the active week, allocating the one-element wrapper on first use.
func (rc *RulesConfig) Week() *WeekRules {
	if len(rc.WeeklyRules) == 0 {
		rc.WeeklyRules = []WeekRules{{}}
	}
	return &rc.WeeklyRules[0]
}

// AddTimeRange appends the default 09:00–10:00 range to the given day.
func (rc *RulesConfig) AddTimeRange(day int) {
	if day < 0 || day > 6 {
		return
	}
	week := rc.Week()
	week[day] = append(week[day], TimeRange{StartTime: "09:00", EndTime: "10:00"})
}

// RemoveTimeRange removes the range at the given position of the day.
func (rc *RulesConfig) RemoveTimeRange(day, index int) {
	if day < 0 || day > 6 {
		return
	}
	week := rc.Week()
	if index < 0 || index >= len(week[day]) {
		return
	}
	week[day] = append(week[day][:index], week[day][index+1:]...)
}

// UpdateTimeRange replaces the start or end time of one range in place.
// Field is "startTime" or "endTime"; anything else is ignored.
func (rc *RulesConfig) UpdateTimeRange(day, index int, field, value string) {
	if day < 0 || day > 6 {
		return
	}
	week := rc.Week()
	if index < 0 || index >= len(week[day]) {
		return
	}
	switch field {
	case "startTime":
		week[day][index].StartTime = value
	case "endTime":
		week[day][index].EndTime = value
	}
}

// AddException appends an exception date. Duplicates are accepted here and
// collapsed by Normalize on save.
func (rc *RulesConfig) AddException(date string) {
	rc.Exceptions = append(rc.Exceptions, Exception{Date: date})
}

// RemoveException removes the exception at the given position.
func (rc *RulesConfig) RemoveException(index int) {
	if index < 0 || index >= len(rc.Exceptions) {
		return
	}
	rc.Exceptions = append(rc.Exceptions[:index], rc.Exceptions[index+1:]...)
}

// Normalize collapses duplicate exception dates, keeping first-seen order.
func (rc *RulesConfig) Normalize() {
	seen := make(map[string]bool, len(rc.Exceptions))
	out := rc.Exceptions[:0]
	for _, ex := range rc.Exceptions {
		if seen[ex.Date] {
			continue
		}
		seen[ex.Date] = true
		out = append(out, ex)
	}
	rc.Exceptions = out
}

// Validate checks the whole week and returns every user-facing problem found.
// An empty result means the config is saveable. Per day, per range it checks:
// both times present, start before end (minute precision), no duplicate start
// time within the day, and no pairwise overlap. Duplicate starts are reported
// before the overlap comparison for that pair is reached. Touching endpoints
// (one range ending exactly where another begins) are not overlaps.
func (rc *RulesConfig) Validate() []string {
	var problems []string

	if rc.SlotDuration <= 0 {
		problems = append(problems, "slot duration must be greater than zero")
	}
	if rc.Price < 0 {
		problems = append(problems, "price cannot be negative")
	}

	week := rc.Week()
	for day := 0; day < 7; day++ {
		type parsed struct {
			start, end int
			rng        TimeRange
		}
		var accepted []parsed

		for i, rng := range week[day] {
			if rng.StartTime == "" || rng.EndTime == "" {
				problems = append(problems, fmt.Sprintf("%s: range %d is missing a start or end time", DayName(day), i+1))
				continue
			}
			start, err := MinutesOfDay(rng.StartTime)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s: %v", DayName(day), err))
				continue
			}
			end, err := MinutesOfDay(rng.EndTime)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s: %v", DayName(day), err))
				continue
			}
			if start >= end {
				problems = append(problems,
					fmt.Sprintf("%s: start time %s must be before end time %s", DayName(day), rng.StartTime, rng.EndTime))
				continue
			}

			conflict := false
			for _, prev := range accepted {
				if start == prev.start {
					problems = append(problems,
						fmt.Sprintf("%s: duplicate start time %s", DayName(day), rng.StartTime))
					conflict = true
					break
				}
				// Touching boundaries (start == prev.end or end == prev.start)
				// do not overlap.
				if start < prev.end && end > prev.start {
					problems = append(problems,
						fmt.Sprintf("%s: range %s–%s overlaps %s–%s",
							DayName(day), rng.StartTime, rng.EndTime, prev.rng.StartTime, prev.rng.EndTime))
					conflict = true
					break
				}
			}
			if !conflict {
				accepted = append(accepted, parsed{start: start, end: end, rng: rng})
			}
		}
	}

	return problems
}

// PreviewSlots walks each range of the day forward from its start in
// SlotDuration increments and emits one slot per full increment that fits
// entirely inside the range. A trailing remainder shorter than the duration
// is dropped. Pure function of the current week and duration.
func (rc *RulesConfig) PreviewSlots(day int) []PreviewSlot {
	if day < 0 || day > 6 {
		return nil
	}
	step := time.Duration(rc.SlotDuration * float64(time.Hour))
	if step <= 0 {
		return nil
	}

	var slots []PreviewSlot
	week := rc.Week()
	for _, rng := range week[day] {
		start, err := MinutesOfDay(rng.StartTime)
		if err != nil {
			continue
		}
		end, err := MinutesOfDay(rng.EndTime)
		if err != nil {
			continue
		}
		for cur := time.Duration(start) * time.Minute; cur+step <= time.Duration(end)*time.Minute; cur += step {
			slots = append(slots, PreviewSlot{
				StartTime: FormatMinutes(int((cur) / time.Minute)),
				EndTime:   FormatMinutes(int((cur + step) / time.Minute)),
			})
		}
	}
	return slots
}

// DayOpenHours sums (end − start) across the day's ranges, in hours.
// Unparseable ranges contribute nothing.
func (rc *RulesConfig) DayOpenHours(day int) float64 {
	if day < 0 || day > 6 {
		return 0
	}
	total := 0
	week := rc.Week()
	for _, rng := range week[day] {
		start, err := MinutesOfDay(rng.StartTime)
		if err != nil {
			continue
		}
		end, err := MinutesOfDay(rng.EndTime)
		if err != nil {
			continue
		}
		if end > start {
			total += end - start
		}
	}
	return float64(total) / 60.0
}

// IsExceptionDate reports whether the given "YYYY-MM-DD" date is closed.
func (rc *RulesConfig) IsExceptionDate(date string) bool {
	for _, ex := range rc.Exceptions {
		if ex.Date == date {
			return true
		}
	}
	return false
}
