package schedule

import (
	"reflect"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestOpenHours_NoEntryForDay(t *testing.T) {
	entries := []OpeningHours{
		{WeekDay: Monday, Opening: 8, Closing: 18},
	}

	hours, open := OpenHours(entries, Tuesday)
	if open {
		t.Fatal("expected arena to be closed on Tuesday")
	}
	if hours != nil {
		t.Errorf("expected nil hours, got %v", hours)
	}
}

func TestOpenHours_HalfOpenInterval(t *testing.T) {
	entries := []OpeningHours{
		{WeekDay: Saturday, Opening: 8, Closing: 10},
	}

	hours, open := OpenHours(entries, Saturday)
	if !open {
		t.Fatal("expected arena to be open on Saturday")
	}
	want := []int{8, 9}
	if !reflect.DeepEqual(hours, want) {
		t.Errorf("OpenHours = %v, want %v", hours, want)
	}
}

func TestOpenHours_LunchBoundsExcludeExactHoursOnly(t *testing.T) {
	// Lunch bounds exclude only the two boundary hours, never a range —
	// even when lunch_opening > lunch_closing.
	entries := []OpeningHours{
		{
			WeekDay:      Wednesday,
			Opening:      8,
			Closing:      18,
			LunchOpening: intPtr(14),
			LunchClosing: intPtr(12),
		},
	}

	hours, open := OpenHours(entries, Wednesday)
	if !open {
		t.Fatal("expected arena to be open on Wednesday")
	}
	want := []int{8, 9, 10, 11, 13, 15, 16, 17}
	if !reflect.DeepEqual(hours, want) {
		t.Errorf("OpenHours = %v, want %v", hours, want)
	}
}

func TestOpenHours_SingleLunchBoundDisablesExclusion(t *testing.T) {
	entries := []OpeningHours{
		{
			WeekDay:      Friday,
			Opening:      10,
			Closing:      14,
			LunchClosing: intPtr(12),
		},
	}

	hours, _ := OpenHours(entries, Friday)
	want := []int{10, 11, 12, 13}
	if !reflect.DeepEqual(hours, want) {
		t.Errorf("OpenHours = %v, want %v", hours, want)
	}
}

func TestOpenHours_EqualLunchBounds(t *testing.T) {
	entries := []OpeningHours{
		{
			WeekDay:      Monday,
			Opening:      8,
			Closing:      12,
			LunchOpening: intPtr(10),
			LunchClosing: intPtr(10),
		},
	}

	hours, _ := OpenHours(entries, Monday)
	want := []int{8, 9, 11}
	if !reflect.DeepEqual(hours, want) {
		t.Errorf("OpenHours = %v, want %v", hours, want)
	}
}
