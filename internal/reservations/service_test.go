package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gasparellodev/mono-repo2/internal/arenas"
	"github.com/gasparellodev/mono-repo2/internal/courts"
	"github.com/gasparellodev/mono-repo2/internal/schedule"
	"github.com/gasparellodev/mono-repo2/pkg/cache"
)

type fakeReservationRepo struct {
	active []Reservation
}

func (f *fakeReservationRepo) CreateReservation(ctx context.Context, reservation *Reservation) error {
	for _, existing := range f.active {
		if existing.CourtID == reservation.CourtID &&
			existing.Date.Equal(reservation.Date) &&
			existing.Status.IsActive() {
			return ErrSlotAlreadyReserved
		}
	}
	reservation.ID = uuid.New()
	f.active = append(f.active, *reservation)
	return nil
}

func (f *fakeReservationRepo) FindActiveByCourtAndTimestamp(ctx context.Context, courtID uuid.UUID, timestamp time.Time) (*Reservation, error) {
	for i := range f.active {
		r := &f.active[i]
		if r.CourtID == courtID && r.Date.Equal(timestamp) && r.Status.IsActive() {
			return r, nil
		}
	}
	return nil, ErrReservationNotFound
}

func (f *fakeReservationRepo) FindByCourtsBetween(ctx context.Context, courtIDs []uuid.UUID, start, end time.Time) ([]Reservation, error) {
	ids := make(map[uuid.UUID]bool, len(courtIDs))
	for _, id := range courtIDs {
		ids[id] = true
	}
	var matched []Reservation
	for _, r := range f.active {
		if ids[r.CourtID] && !r.Date.Before(start) && r.Date.Before(end) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (f *fakeReservationRepo) FindByArenaBetween(ctx context.Context, arenaID uuid.UUID, start, end time.Time) ([]Reservation, error) {
	var matched []Reservation
	for _, r := range f.active {
		if !r.Date.Before(start) && r.Date.Before(end) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (f *fakeReservationRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]Reservation, error) {
	var matched []Reservation
	for _, r := range f.active {
		if r.UserID == userID {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (f *fakeReservationRepo) FindByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	for i := range f.active {
		if f.active[i].ID == id {
			found := f.active[i]
			return &found, nil
		}
	}
	return nil, ErrReservationNotFound
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	for i := range f.active {
		if f.active[i].ID == id {
			f.active[i].Status = status
			return nil
		}
	}
	return ErrReservationNotFound
}

type fakeCourtSource struct {
	byID    map[uuid.UUID]*courts.Court
	byArena map[uuid.UUID][]courts.Court
}

func (f *fakeCourtSource) FindByIDWithSchedule(ctx context.Context, id uuid.UUID) (*courts.Court, error) {
	if court, ok := f.byID[id]; ok {
		return court, nil
	}
	return nil, courts.ErrCourtNotFound
}

func (f *fakeCourtSource) FindByArena(ctx context.Context, arenaID uuid.UUID) ([]courts.Court, error) {
	return f.byArena[arenaID], nil
}

type fakeArenaSource struct {
	list []arenas.Arena
}

func (f *fakeArenaSource) FindValidatedWithCourts(ctx context.Context, nameFilter string) ([]arenas.Arena, error) {
	return f.list, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type recordingProducer struct {
	events []*LifecycleEvent
}

func (p *recordingProducer) Publish(event *LifecycleEvent) error {
	p.events = append(p.events, event)
	return nil
}

func (p *recordingProducer) Close() error { return nil }

// noopCache misses every Get so services always compute fresh results.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest interface{}) error {
	return cache.ErrCacheMiss
}
func (noopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (noopCache) Delete(ctx context.Context, key string) error            { return nil }
func (noopCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (noopCache) Exists(ctx context.Context, key string) bool             { return false }
func (noopCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	return nil
}
func (noopCache) Ping(ctx context.Context) error { return nil }

func intPtr(v int) *int { return &v }

// 2026-06-25 is a Thursday.
func thursdayEntry(opening, closing int) schedule.OpeningHours {
	return schedule.OpeningHours{WeekDay: schedule.Thursday, Opening: opening, Closing: closing}
}

func scheduledCourt(entries ...schedule.OpeningHours) *courts.Court {
	validated := time.Now()
	arenaID := uuid.New()
	return &courts.Court{
		ID:           uuid.New(),
		Name:         "Quadra 1",
		ValuePerHour: 120,
		ArenaID:      arenaID,
		Arena: arenas.Arena{
			ID:           arenaID,
			Name:         "Arena Central",
			IsValidated:  &validated,
			OpeningHours: entries,
		},
	}
}

func newAdmissionService(court *courts.Court, now time.Time) (Service, *fakeReservationRepo, *recordingProducer) {
	repo := &fakeReservationRepo{}
	producer := &recordingProducer{}
	courtSrc := &fakeCourtSource{byID: map[uuid.UUID]*courts.Court{court.ID: court}}
	svc := NewService(repo, courtSrc, &fakeArenaSource{}, noopCache{}, producer, fixedClock{now: now}, testLoc)
	return svc, repo, producer
}

func TestCreate_AdmitsValidRequest(t *testing.T) {
	court := scheduledCourt(thursdayEntry(8, 18))
	now := time.Date(2026, 6, 25, 8, 30, 0, 0, testLoc)
	svc, repo, producer := newAdmissionService(court, now)
	userID := uuid.New()

	reservation, err := svc.Create(context.Background(), &CreateReservationRequest{
		Date:    "2026-06-25T09:00:00-03:00",
		CourtID: court.ID.String(),
	}, userID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if reservation.Status != StatusPending {
		t.Errorf("expected PENDING, got %s", reservation.Status)
	}
	if reservation.UserID != userID {
		t.Errorf("user not set on reservation")
	}
	if len(repo.active) != 1 {
		t.Fatalf("expected 1 persisted reservation, got %d", len(repo.active))
	}
	if len(producer.events) != 1 || producer.events[0].Type != EventReservationCreated {
		t.Errorf("expected one reservation.created event, got %+v", producer.events)
	}
}

func TestCreate_SecondRequestForSameSlotFails(t *testing.T) {
	court := scheduledCourt(thursdayEntry(8, 18))
	now := time.Date(2026, 6, 25, 8, 30, 0, 0, testLoc)
	svc, repo, _ := newAdmissionService(court, now)

	req := &CreateReservationRequest{
		Date:    "2026-06-25T09:00:00-03:00",
		CourtID: court.ID.String(),
	}
	if _, err := svc.Create(context.Background(), req, uuid.New()); err != nil {
		t.Fatalf("first request: expected nil error, got %v", err)
	}
	_, err := svc.Create(context.Background(), req, uuid.New())
	if !errors.Is(err, ErrSlotAlreadyReserved) {
		t.Fatalf("second request: expected ErrSlotAlreadyReserved, got %v", err)
	}
	if len(repo.active) != 1 {
		t.Errorf("exactly one reservation must win the slot, got %d", len(repo.active))
	}
}

func TestCreate_TruncatesToHourStart(t *testing.T) {
	court := scheduledCourt(thursdayEntry(8, 18))
	now := time.Date(2026, 6, 25, 8, 30, 0, 0, testLoc)
	svc, repo, _ := newAdmissionService(court, now)

	_, err := svc.Create(context.Background(), &CreateReservationRequest{
		Date:    "2026-06-25T09:45:12-03:00",
		CourtID: court.ID.String(),
	}, uuid.New())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	want := time.Date(2026, 6, 25, 9, 0, 0, 0, testLoc)
	if !repo.active[0].Date.Equal(want) {
		t.Errorf("expected date truncated to %v, got %v", want, repo.active[0].Date)
	}
}

func TestCreate_AdmitsClosingHour(t *testing.T) {
	// The admission bound is inclusive of the closing hour, unlike the
	// half-open interval used for slot listing.
	court := scheduledCourt(thursdayEntry(8, 18))
	now := time.Date(2026, 6, 25, 8, 30, 0, 0, testLoc)
	svc, _, _ := newAdmissionService(court, now)

	_, err := svc.Create(context.Background(), &CreateReservationRequest{
		Date:    "2026-06-25T18:00:00-03:00",
		CourtID: court.ID.String(),
	}, uuid.New())
	if err != nil {
		t.Fatalf("expected hour 18 admitted with closing 18, got %v", err)
	}
}

func TestCreate_RejectionsRunInOrder(t *testing.T) {
	now := time.Date(2026, 6, 25, 8, 30, 0, 0, testLoc)
	lunchEntry := thursdayEntry(8, 18)
	lunchEntry.LunchOpening = intPtr(14)
	lunchEntry.LunchClosing = intPtr(12)

	tests := []struct {
		name    string
		entries []schedule.OpeningHours
		date    string
		want    error
	}{
		{
			name:    "no schedule configured",
			entries: nil,
			date:    "2026-06-25T09:00:00-03:00",
			want:    ErrScheduleNotConfigured,
		},
		{
			name:    "past date",
			entries: []schedule.OpeningHours{thursdayEntry(8, 18)},
			date:    "2026-06-25T08:00:00-03:00",
			want:    ErrPastDate,
		},
		{
			name:    "closed on weekday",
			entries: []schedule.OpeningHours{{WeekDay: schedule.Monday, Opening: 8, Closing: 18}},
			date:    "2026-06-25T09:00:00-03:00",
			want:    ErrArenaClosedOnDate,
		},
		{
			name:    "before opening",
			entries: []schedule.OpeningHours{thursdayEntry(10, 18)},
			date:    "2026-06-25T09:00:00-03:00",
			want:    ErrOutsideBusinessHours,
		},
		{
			name:    "after closing",
			entries: []schedule.OpeningHours{thursdayEntry(8, 18)},
			date:    "2026-06-25T19:00:00-03:00",
			want:    ErrOutsideBusinessHours,
		},
		{
			name:    "inside lunch window",
			entries: []schedule.OpeningHours{lunchEntry},
			date:    "2026-06-25T13:00:00-03:00",
			want:    ErrLunchWindow,
		},
		{
			name:    "unparseable date",
			entries: []schedule.OpeningHours{thursdayEntry(8, 18)},
			date:    "25/06/2026 09:00",
			want:    ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			court := scheduledCourt(tt.entries...)
			svc, repo, _ := newAdmissionService(court, now)

			_, err := svc.Create(context.Background(), &CreateReservationRequest{
				Date:    tt.date,
				CourtID: court.ID.String(),
			}, uuid.New())
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if len(repo.active) != 0 {
				t.Error("rejected request must not persist a reservation")
			}
		})
	}
}

func TestCreate_UnknownCourt(t *testing.T) {
	court := scheduledCourt(thursdayEntry(8, 18))
	now := time.Date(2026, 6, 25, 8, 30, 0, 0, testLoc)
	svc, _, _ := newAdmissionService(court, now)

	_, err := svc.Create(context.Background(), &CreateReservationRequest{
		Date:    "2026-06-25T09:00:00-03:00",
		CourtID: uuid.NewString(),
	}, uuid.New())
	if !errors.Is(err, courts.ErrCourtNotFound) {
		t.Fatalf("expected ErrCourtNotFound, got %v", err)
	}
}

func TestCancel_TransitionsToCancelledByUser(t *testing.T) {
	court := scheduledCourt(thursdayEntry(8, 18))
	now := time.Date(2026, 6, 25, 8, 30, 0, 0, testLoc)
	svc, repo, producer := newAdmissionService(court, now)
	userID := uuid.New()

	reservation, err := svc.Create(context.Background(), &CreateReservationRequest{
		Date:    "2026-06-25T09:00:00-03:00",
		CourtID: court.ID.String(),
	}, userID)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := svc.Cancel(context.Background(), reservation.ID, userID); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if repo.active[0].Status != StatusCancelledByUser {
		t.Errorf("expected CANCELLED_BY_USER, got %s", repo.active[0].Status)
	}
	if len(producer.events) != 2 || producer.events[1].Type != EventReservationCancelled {
		t.Errorf("expected reservation.cancelled event, got %+v", producer.events)
	}

	// The slot is free again for another player.
	if _, err := svc.Create(context.Background(), &CreateReservationRequest{
		Date:    "2026-06-25T09:00:00-03:00",
		CourtID: court.ID.String(),
	}, uuid.New()); err != nil {
		t.Errorf("cancelled slot must be reservable again, got %v", err)
	}
}

func TestCancel_RejectsNonOwner(t *testing.T) {
	court := scheduledCourt(thursdayEntry(8, 18))
	now := time.Date(2026, 6, 25, 8, 30, 0, 0, testLoc)
	svc, _, _ := newAdmissionService(court, now)

	reservation, err := svc.Create(context.Background(), &CreateReservationRequest{
		Date:    "2026-06-25T09:00:00-03:00",
		CourtID: court.ID.String(),
	}, uuid.New())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	err = svc.Cancel(context.Background(), reservation.ID, uuid.New())
	if !errors.Is(err, ErrNotReservationOwner) {
		t.Fatalf("expected ErrNotReservationOwner, got %v", err)
	}
}

func TestCancel_RejectsAlreadyCancelled(t *testing.T) {
	court := scheduledCourt(thursdayEntry(8, 18))
	now := time.Date(2026, 6, 25, 8, 30, 0, 0, testLoc)
	svc, _, _ := newAdmissionService(court, now)
	userID := uuid.New()

	reservation, err := svc.Create(context.Background(), &CreateReservationRequest{
		Date:    "2026-06-25T09:00:00-03:00",
		CourtID: court.ID.String(),
	}, userID)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := svc.Cancel(context.Background(), reservation.ID, userID); err != nil {
		t.Fatalf("setup: %v", err)
	}

	err = svc.Cancel(context.Background(), reservation.ID, userID)
	if !errors.Is(err, ErrAlreadyCancelled) {
		t.Fatalf("expected ErrAlreadyCancelled, got %v", err)
	}
}

func TestFindAllInDay_RejectsUnknownSort(t *testing.T) {
	court := scheduledCourt(thursdayEntry(8, 18))
	now := time.Date(2026, 6, 25, 8, 30, 0, 0, testLoc)
	svc, _, _ := newAdmissionService(court, now)

	_, err := svc.FindAllInDay(context.Background(), &FindAllInDayQuery{
		Date: "2026-06-25", Latitude: -23.55, Longitude: -46.63, Sort: "PRICE_ASC",
	})
	if !errors.Is(err, ErrInvalidSort) {
		t.Fatalf("expected ErrInvalidSort, got %v", err)
	}
}

func TestFindAllInDay_BuildsSlotVectorsPerCourt(t *testing.T) {
	validated := time.Now()
	arenaID := uuid.New()
	courtID := uuid.New()
	arena := arenas.Arena{
		ID:          arenaID,
		Name:        "Arena Central",
		IsValidated: &validated,
		Address:     arenas.Address{Lat: -23.55, Lon: -46.63},
		OpeningHours: []schedule.OpeningHours{
			thursdayEntry(8, 10),
		},
	}
	courtSrc := &fakeCourtSource{byArena: map[uuid.UUID][]courts.Court{
		arenaID: {{ID: courtID, Name: "Quadra 1", ValuePerHour: 120, ArenaID: arenaID}},
	}}
	repo := &fakeReservationRepo{active: []Reservation{
		activeReservation(courtID, time.Date(2026, 6, 25, 9, 0, 0, 0, testLoc)),
	}}
	clock := fixedClock{now: time.Date(2026, 6, 25, 7, 0, 0, 0, testLoc)}
	svc := NewService(repo, courtSrc, &fakeArenaSource{list: []arenas.Arena{arena}},
		noopCache{}, &recordingProducer{}, clock, testLoc)

	results, err := svc.FindAllInDay(context.Background(), &FindAllInDayQuery{
		Date: "2026-06-25", Latitude: -23.55, Longitude: -46.63,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 arena, got %d", len(results))
	}
	slots := results[0].Courts[0].AvailableTimes
	want := []Slot{{8, true}, {9, false}}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %+v", len(want), slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d: expected %+v, got %+v", i, want[i], slots[i])
		}
	}
}

func TestFindAllInDay_OnlyAvailableDropsEmptyArenas(t *testing.T) {
	validated := time.Now()
	arenaID := uuid.New()
	courtID := uuid.New()
	arena := arenas.Arena{
		ID:          arenaID,
		Name:        "Arena Central",
		IsValidated: &validated,
		Address:     arenas.Address{Lat: -23.55, Lon: -46.63},
		OpeningHours: []schedule.OpeningHours{
			thursdayEntry(8, 10),
		},
	}
	courtSrc := &fakeCourtSource{byArena: map[uuid.UUID][]courts.Court{
		arenaID: {{ID: courtID, Name: "Quadra 1", ValuePerHour: 120, ArenaID: arenaID}},
	}}
	repo := &fakeReservationRepo{active: []Reservation{
		activeReservation(courtID, time.Date(2026, 6, 25, 8, 0, 0, 0, testLoc)),
		activeReservation(courtID, time.Date(2026, 6, 25, 9, 0, 0, 0, testLoc)),
	}}
	clock := fixedClock{now: time.Date(2026, 6, 25, 7, 0, 0, 0, testLoc)}
	svc := NewService(repo, courtSrc, &fakeArenaSource{list: []arenas.Arena{arena}},
		noopCache{}, &recordingProducer{}, clock, testLoc)

	results, err := svc.FindAllInDay(context.Background(), &FindAllInDayQuery{
		Date: "2026-06-25", Latitude: -23.55, Longitude: -46.63, OnlyAvailable: true,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("fully booked arena must be dropped, got %+v", results)
	}
}

func TestFindAllInDay_ExcludesArenasOutsideRadius(t *testing.T) {
	validated := time.Now()
	arena := arenas.Arena{
		ID:          uuid.New(),
		Name:        "Arena Campinas",
		IsValidated: &validated,
		// ~88 km from the caller, outside the 25 km day-availability radius.
		Address: arenas.Address{Lat: -22.9056, Lon: -47.0608},
		OpeningHours: []schedule.OpeningHours{
			thursdayEntry(8, 10),
		},
	}
	clock := fixedClock{now: time.Date(2026, 6, 25, 7, 0, 0, 0, testLoc)}
	svc := NewService(&fakeReservationRepo{}, &fakeCourtSource{}, &fakeArenaSource{list: []arenas.Arena{arena}},
		noopCache{}, &recordingProducer{}, clock, testLoc)

	results, err := svc.FindAllInDay(context.Background(), &FindAllInDayQuery{
		Date: "2026-06-25", Latitude: -23.5505, Longitude: -46.6333,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no arenas within radius, got %+v", results)
	}
}

func TestFindAllInMonth_MarksPastAndFullDaysUnavailable(t *testing.T) {
	courtID := uuid.New()
	repo := &fakeReservationRepo{}
	// Day 15 hits the per-day reservation ceiling; day 20 stays under it
	// because cancelled rows do not count.
	for hour := 8; hour < 18; hour++ {
		repo.active = append(repo.active,
			activeReservation(courtID, time.Date(2026, 6, 15, hour, 0, 0, 0, testLoc)))
	}
	cancelled := activeReservation(courtID, time.Date(2026, 6, 20, 9, 0, 0, 0, testLoc))
	cancelled.Status = StatusCancelledByUser
	repo.active = append(repo.active, cancelled,
		activeReservation(courtID, time.Date(2026, 6, 20, 10, 0, 0, 0, testLoc)))

	clock := fixedClock{now: time.Date(2026, 6, 10, 12, 0, 0, 0, testLoc)}
	svc := NewService(repo, &fakeCourtSource{}, &fakeArenaSource{},
		noopCache{}, &recordingProducer{}, clock, testLoc)

	results, err := svc.FindAllInMonth(context.Background(), &FindAllInMonthQuery{
		ArenaID: uuid.NewString(), Month: 6, Year: 2026,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(results) != 30 {
		t.Fatalf("expected 30 days for June, got %d", len(results))
	}

	byDay := make(map[int]bool, len(results))
	for _, day := range results {
		byDay[day.Day] = day.Available
	}
	if byDay[5] {
		t.Error("day 5 is past, expected unavailable")
	}
	if !byDay[10] {
		t.Error("day 10 is today, expected available")
	}
	if byDay[15] {
		t.Error("day 15 is at the reservation ceiling, expected unavailable")
	}
	if !byDay[20] {
		t.Error("day 20 is under the ceiling, expected available")
	}
}

func TestFindByUser_MapsCourtAndArenaNames(t *testing.T) {
	userID := uuid.New()
	repo := &fakeReservationRepo{active: []Reservation{
		{
			ID:     uuid.New(),
			UserID: userID,
			Date:   time.Date(2026, 6, 25, 9, 0, 0, 0, testLoc),
			Status: StatusConfirmed,
			Court: courts.Court{
				Name:  "Quadra 1",
				Arena: arenas.Arena{Name: "Arena Central"},
			},
		},
	}}
	clock := fixedClock{now: time.Date(2026, 6, 10, 12, 0, 0, 0, testLoc)}
	svc := NewService(repo, &fakeCourtSource{}, &fakeArenaSource{},
		noopCache{}, &recordingProducer{}, clock, testLoc)

	results, err := svc.FindByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(results))
	}
	if results[0].Court != "Quadra 1" || results[0].Arena != "Arena Central" {
		t.Errorf("names not mapped: %+v", results[0])
	}
}
