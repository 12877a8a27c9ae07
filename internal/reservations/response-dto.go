package reservations

import "time"

// CourtAvailabilityResponse is one court's slot vector inside a
// day-availability listing.
type CourtAvailabilityResponse struct {
	CourtID        string  `json:"court_id"`
	Court          string  `json:"court"`
	ValuePerHour   float64 `json:"value_per_hour"`
	AvailableTimes []Slot  `json:"available_times"`
}

type ArenaAvailabilityResponse struct {
	ArenaID  string                      `json:"arena_id"`
	Arena    string                      `json:"arena"`
	Distance float64                     `json:"distance"`
	Courts   []CourtAvailabilityResponse `json:"courts"`
}

// DayAvailabilityResponse is one day of a month-availability vector.
type DayAvailabilityResponse struct {
	Day       int  `json:"day"`
	Available bool `json:"available"`
}

// UserReservationResponse is one entry of a player's reservation history.
type UserReservationResponse struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Status Status    `json:"status"`
	Court  string    `json:"court"`
	Arena  string    `json:"arena"`
}
