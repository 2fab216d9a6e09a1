package models

// AvailableSlot is a bookable interval for a concrete date, derived from the
// turf's RulesConfig by the preview walk and annotated with booking state.
type AvailableSlot struct {
	TurfID    string  `json:"turfId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Start     int     `json:"start"` // minutes from midnight
	End       int     `json:"end"`
	Price     float64 `json:"price"`
	Booked    bool    `json:"booked"`
}
