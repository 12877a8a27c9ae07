package reservations

import "testing"

func courtWithSlots(name string, valuePerHour float64, slots ...Slot) CourtAvailabilityResponse {
	return CourtAvailabilityResponse{
		Court:          name,
		ValuePerHour:   valuePerHour,
		AvailableTimes: slots,
	}
}

func courtNames(items []CourtAvailabilityResponse) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Court)
	}
	return names
}

func assertOrder(t *testing.T, items []CourtAvailabilityResponse, want ...string) {
	t.Helper()
	got := courtNames(items)
	if len(got) != len(want) {
		t.Fatalf("expected %d courts, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestCourtSort_IsValid(t *testing.T) {
	tests := []struct {
		sort  CourtSort
		valid bool
	}{
		{"", true},
		{SortTimesNext, true},
		{SortCheapestSchedule, true},
		{"PRICE_ASC", false},
		{"times_next", false},
	}
	for _, tt := range tests {
		if got := tt.sort.IsValid(); got != tt.valid {
			t.Errorf("IsValid(%q) = %v, expected %v", tt.sort, got, tt.valid)
		}
	}
}

func TestSortCourts_TimesNextRanksByEarliestUpcomingSlot(t *testing.T) {
	items := []CourtAvailabilityResponse{
		courtWithSlots("Quadra C", 100, Slot{15, true}),
		courtWithSlots("Quadra A", 100, Slot{9, true}, Slot{13, true}),
		courtWithSlots("Quadra B", 100, Slot{12, true}),
	}

	// Hour 9 is already in the past relative to currentHour 12.
	SortCourts(items, SortTimesNext, 12)

	assertOrder(t, items, "Quadra B", "Quadra A", "Quadra C")
}

func TestSortCourts_TimesNextPutsCourtsWithNoUpcomingSlotLast(t *testing.T) {
	items := []CourtAvailabilityResponse{
		courtWithSlots("Quadra Cheia", 100, Slot{9, false}, Slot{10, false}),
		courtWithSlots("Quadra Cedo", 100, Slot{8, true}),
		courtWithSlots("Quadra Livre", 100, Slot{14, true}),
	}

	SortCourts(items, SortTimesNext, 12)

	// Fully booked and early-only courts both lack a qualifying slot and
	// keep their relative order at the tail.
	assertOrder(t, items, "Quadra Livre", "Quadra Cheia", "Quadra Cedo")
}

func TestSortCourts_CheapestScheduleRanksByPrice(t *testing.T) {
	items := []CourtAvailabilityResponse{
		courtWithSlots("Quadra Cara", 200, Slot{9, true}),
		courtWithSlots("Quadra Cheia", 50, Slot{9, false}),
		courtWithSlots("Quadra Barata", 80, Slot{9, true}),
	}

	SortCourts(items, SortCheapestSchedule, 0)

	// The cheapest court is fully booked, so it ranks after every court
	// that still has a free slot.
	assertOrder(t, items, "Quadra Barata", "Quadra Cara", "Quadra Cheia")
}

func TestSortCourts_CheapestScheduleIsStableOnEqualPrices(t *testing.T) {
	items := []CourtAvailabilityResponse{
		courtWithSlots("Quadra 1", 100, Slot{9, true}),
		courtWithSlots("Quadra 2", 100, Slot{10, true}),
		courtWithSlots("Quadra 3", 100, Slot{11, true}),
	}

	SortCourts(items, SortCheapestSchedule, 0)

	assertOrder(t, items, "Quadra 1", "Quadra 2", "Quadra 3")
}

func TestSortCourts_EmptyStrategyKeepsOriginalOrder(t *testing.T) {
	items := []CourtAvailabilityResponse{
		courtWithSlots("Quadra B", 200, Slot{15, true}),
		courtWithSlots("Quadra A", 100, Slot{9, true}),
	}

	SortCourts(items, "", 12)

	assertOrder(t, items, "Quadra B", "Quadra A")
}

func TestFilterOnlyAvailable_DropsFullyBookedCourts(t *testing.T) {
	items := []CourtAvailabilityResponse{
		courtWithSlots("Quadra Livre", 100, Slot{9, false}, Slot{10, true}),
		courtWithSlots("Quadra Cheia", 100, Slot{9, false}, Slot{10, false}),
		courtWithSlots("Quadra Vazia", 100),
	}

	filtered := FilterOnlyAvailable(items)

	assertOrder(t, filtered, "Quadra Livre")
}
