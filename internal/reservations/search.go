package reservations

import "sort"

// CourtSort selects the secondary ordering applied to the courts inside one
// arena of a day-availability response. Arena ordering itself is always by
// distance.
type CourtSort string

const (
	SortTimesNext        CourtSort = "TIMES_NEXT"
	SortCheapestSchedule CourtSort = "CHEAPEST_SCHEDULE"
)

// IsValid reports whether s names a known sort strategy. Empty means no
// secondary ordering.
func (s CourtSort) IsValid() bool {
	return s == "" || s == SortTimesNext || s == SortCheapestSchedule
}

// earliestAvailableFrom returns the first available hour >= from, or false
// when no slot qualifies.
func earliestAvailableFrom(slots []Slot, from int) (int, bool) {
	for _, slot := range slots {
		if slot.Available && slot.Hour >= from {
			return slot.Hour, true
		}
	}
	return 0, false
}

func hasAvailableSlot(slots []Slot) bool {
	for _, slot := range slots {
		if slot.Available {
			return true
		}
	}
	return false
}

// SortCourts orders courts in place by the chosen strategy.
//
// TIMES_NEXT ranks by the earliest available hour at or after currentHour;
// courts with no qualifying slot go last. CHEAPEST_SCHEDULE ranks by hourly
// price among courts with at least one free slot; fully booked courts go
// last. Both sorts are stable so equal keys keep their original order.
func SortCourts(items []CourtAvailabilityResponse, strategy CourtSort, currentHour int) {
	switch strategy {
	case SortTimesNext:
		sort.SliceStable(items, func(i, j int) bool {
			hi, oki := earliestAvailableFrom(items[i].AvailableTimes, currentHour)
			hj, okj := earliestAvailableFrom(items[j].AvailableTimes, currentHour)
			if oki != okj {
				return oki
			}
			if !oki {
				return false
			}
			return hi < hj
		})
	case SortCheapestSchedule:
		sort.SliceStable(items, func(i, j int) bool {
			ai := hasAvailableSlot(items[i].AvailableTimes)
			aj := hasAvailableSlot(items[j].AvailableTimes)
			if ai != aj {
				return ai
			}
			if !ai {
				return false
			}
			return items[i].ValuePerHour < items[j].ValuePerHour
		})
	}
}

// FilterOnlyAvailable drops courts with zero free hours. Callers drop arenas
// that end up with no courts.
func FilterOnlyAvailable(items []CourtAvailabilityResponse) []CourtAvailabilityResponse {
	filtered := make([]CourtAvailabilityResponse, 0, len(items))
	for _, item := range items {
		if hasAvailableSlot(item.AvailableTimes) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
