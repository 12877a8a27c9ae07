package reservations

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

var testLoc = time.FixedZone("BRT", -3*60*60)

func activeReservation(courtID uuid.UUID, date time.Time) Reservation {
	return Reservation{
		ID:      uuid.New(),
		CourtID: courtID,
		Date:    date,
		Status:  StatusPending,
	}
}

func TestComputeAvailability_MarksReservedHoursTaken(t *testing.T) {
	courtID := uuid.New()
	date := time.Date(2026, 6, 25, 0, 0, 0, 0, testLoc)
	reservations := []Reservation{
		activeReservation(courtID, time.Date(2026, 6, 25, 9, 0, 0, 0, testLoc)),
	}

	slots := ComputeAvailability([]int{8, 9, 10}, reservations, date, testLoc)

	want := []Slot{{8, true}, {9, false}, {10, true}}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(slots))
	}
	for i, slot := range slots {
		if slot != want[i] {
			t.Errorf("slot %d: expected %+v, got %+v", i, want[i], slot)
		}
	}
}

func TestComputeAvailability_IgnoresCancelledReservations(t *testing.T) {
	courtID := uuid.New()
	date := time.Date(2026, 6, 25, 0, 0, 0, 0, testLoc)
	cancelled := activeReservation(courtID, time.Date(2026, 6, 25, 9, 0, 0, 0, testLoc))
	cancelled.Status = StatusCancelledByUser

	slots := ComputeAvailability([]int{9}, []Reservation{cancelled}, date, testLoc)

	if !slots[0].Available {
		t.Error("cancelled reservation must not block the slot")
	}
}

func TestComputeAvailability_ConvertsToArenaTimezone(t *testing.T) {
	// Stored in UTC, 12:00 UTC is 09:00 on the arena's wall clock.
	courtID := uuid.New()
	date := time.Date(2026, 6, 25, 0, 0, 0, 0, testLoc)
	reservations := []Reservation{
		activeReservation(courtID, time.Date(2026, 6, 25, 12, 0, 0, 0, time.UTC)),
	}

	slots := ComputeAvailability([]int{9, 12}, reservations, date, testLoc)

	if slots[0].Available {
		t.Error("expected hour 9 taken after timezone conversion")
	}
	if !slots[1].Available {
		t.Error("expected hour 12 free, reservation is not at 12 local time")
	}
}

func TestComputeAvailability_IgnoresOtherDates(t *testing.T) {
	courtID := uuid.New()
	date := time.Date(2026, 6, 25, 0, 0, 0, 0, testLoc)
	reservations := []Reservation{
		activeReservation(courtID, time.Date(2026, 6, 26, 9, 0, 0, 0, testLoc)),
	}

	slots := ComputeAvailability([]int{9}, reservations, date, testLoc)

	if !slots[0].Available {
		t.Error("reservation on another date must not block the slot")
	}
}

func TestComputeAvailability_PreservesOpenHoursOrder(t *testing.T) {
	date := time.Date(2026, 6, 25, 0, 0, 0, 0, testLoc)
	openHours := []int{8, 9, 10, 11, 13, 15, 16, 17}

	slots := ComputeAvailability(openHours, nil, date, testLoc)

	for i, slot := range slots {
		if slot.Hour != openHours[i] {
			t.Fatalf("slot %d: expected hour %d, got %d", i, openHours[i], slot.Hour)
		}
		if !slot.Available {
			t.Errorf("hour %d: expected available with no reservations", slot.Hour)
		}
	}
}
