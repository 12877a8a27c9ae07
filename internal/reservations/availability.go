package reservations

import "time"

// Slot is one integer-hour booking candidate for a court on a date.
type Slot struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// ComputeAvailability marks each open hour of a court as free or taken for one
// calendar date. An hour is taken when an active reservation, converted to the
// arena's timezone, lands on the same calendar date with the same hour of day.
// Calendar components are compared after conversion so results reflect the
// arena's wall clock, never the process timezone. Pure function; the order of
// openHours is preserved in the output.
func ComputeAvailability(openHours []int, reservationsOnDate []Reservation, date time.Time, loc *time.Location) []Slot {
	year, month, day := date.In(loc).Date()

	taken := make(map[int]bool, len(reservationsOnDate))
	for _, reservation := range reservationsOnDate {
		if !reservation.Status.IsActive() {
			continue
		}
		local := reservation.Date.In(loc)
		ry, rm, rd := local.Date()
		if ry == year && rm == month && rd == day {
			taken[local.Hour()] = true
		}
	}

	slots := make([]Slot, 0, len(openHours))
	for _, hour := range openHours {
		slots = append(slots, Slot{
			Hour:      hour,
			Available: !taken[hour],
		})
	}
	return slots
}
