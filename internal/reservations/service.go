package reservations

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/gasparellodev/mono-repo2/internal/arenas"
	"github.com/gasparellodev/mono-repo2/internal/courts"
	"github.com/gasparellodev/mono-repo2/internal/schedule"
	"github.com/gasparellodev/mono-repo2/internal/shared/constants"
	"github.com/gasparellodev/mono-repo2/pkg/cache"
)

const (
	dayAvailabilityRadiusMeters = 25000
	maxReservationsPerDay       = 10
)

var (
	ErrScheduleNotConfigured = errors.New("times for this arena have not been set")
	ErrPastDate              = errors.New("can't create a reservation on a past date")
	ErrArenaClosedOnDate     = errors.New("arena not open for the given date")
	ErrOutsideBusinessHours  = errors.New("reservations can only be created during business hours")
	ErrLunchWindow           = errors.New("reservations can't be created during the lunch window")
	ErrInvalidDate           = errors.New("invalid date")
	ErrInvalidSort           = errors.New("invalid sort strategy")
	ErrNotReservationOwner   = errors.New("reservation belongs to another user")
	ErrAlreadyCancelled      = errors.New("reservation is already cancelled")
)

// CourtSource is the slice of the courts repository the reservation flows
// need.
type CourtSource interface {
	FindByIDWithSchedule(ctx context.Context, id uuid.UUID) (*courts.Court, error)
	FindByArena(ctx context.Context, arenaID uuid.UUID) ([]courts.Court, error)
}

// ArenaSource feeds the day-availability search with candidate arenas.
type ArenaSource interface {
	FindValidatedWithCourts(ctx context.Context, nameFilter string) ([]arenas.Arena, error)
}

type Service interface {
	Create(ctx context.Context, req *CreateReservationRequest, userID uuid.UUID) (*Reservation, error)
	FindAllInDay(ctx context.Context, query *FindAllInDayQuery) ([]ArenaAvailabilityResponse, error)
	FindAllInMonth(ctx context.Context, query *FindAllInMonthQuery) ([]DayAvailabilityResponse, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]UserReservationResponse, error)
	Cancel(ctx context.Context, reservationID, userID uuid.UUID) error
}

type service struct {
	repo      Repository
	courtRepo CourtSource
	arenaRepo ArenaSource
	cache     cache.Service
	producer  EventProducer
	clock     Clock
	location  *time.Location
}

func NewService(
	repo Repository,
	courtRepo CourtSource,
	arenaRepo ArenaSource,
	cacheService cache.Service,
	producer EventProducer,
	clock Clock,
	location *time.Location,
) Service {
	return &service{
		repo:      repo,
		courtRepo: courtRepo,
		arenaRepo: arenaRepo,
		cache:     cacheService,
		producer:  producer,
		clock:     clock,
		location:  location,
	}
}

// Create runs the admission flow. Checks run strictly in order and the first
// failure aborts with its typed error; nothing is written before the final
// atomic conflict-check-and-insert.
func (s *service) Create(ctx context.Context, req *CreateReservationRequest, userID uuid.UUID) (*Reservation, error) {
	parsed, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, req.Date)
	}
	timestamp := truncateToHour(parsed, s.location)

	courtID, err := uuid.Parse(req.CourtID)
	if err != nil {
		return nil, courts.ErrCourtNotFound
	}

	// 1. Resolve court with arena and weekly schedule in one read.
	court, err := s.courtRepo.FindByIDWithSchedule(ctx, courtID)
	if err != nil {
		return nil, err
	}

	// 2. Arena must have a configured schedule at all.
	if len(court.Arena.OpeningHours) == 0 {
		return nil, ErrScheduleNotConfigured
	}

	// 3. No booking in the past, judged on the arena's wall clock.
	if !timestamp.After(s.clock.Now()) {
		return nil, ErrPastDate
	}

	// 4. Arena must be open on the requested weekday.
	weekday := schedule.WeekdayFromTime(timestamp)
	entry, ok := schedule.EntryFor(court.Arena.OpeningHours, weekday)
	if !ok {
		return nil, ErrArenaClosedOnDate
	}

	// 5. Hour within business hours. The closing bound is inclusive here,
	// unlike the half-open interval used for slot listing.
	hour := timestamp.Hour()
	if hour < entry.Opening || hour > entry.Closing {
		return nil, ErrOutsideBusinessHours
	}

	// 6. Lunch window, inclusive both ends, only when both bounds are set.
	if entry.LunchOpening != nil && entry.LunchClosing != nil {
		if hour >= *entry.LunchClosing && hour <= *entry.LunchOpening {
			return nil, ErrLunchWindow
		}
	}

	// 7+8. Atomic conflict check and insert.
	reservation := &Reservation{
		UserID:  userID,
		CourtID: court.ID,
		Date:    timestamp,
		Status:  StatusPending,
	}
	if err := s.repo.CreateReservation(ctx, reservation); err != nil {
		return nil, err
	}

	s.publishEvent(EventReservationCreated, reservation)
	s.invalidateAvailability(ctx)

	return reservation, nil
}

func (s *service) FindAllInDay(ctx context.Context, query *FindAllInDayQuery) ([]ArenaAvailabilityResponse, error) {
	strategy := CourtSort(query.Sort)
	if !strategy.IsValid() {
		return nil, ErrInvalidSort
	}

	date, err := time.ParseInLocation("2006-01-02", query.Date, s.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, query.Date)
	}

	cacheKey := constants.BuildDayAvailabilityKey(query.Date, query.Latitude, query.Longitude,
		query.OnlyAvailable, query.ArenaID, query.Sort)

	var cached []ArenaAvailabilityResponse
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for day availability: %s", cacheKey)
		return cached, nil
	}
	log.Printf("Cache MISS for day availability: %s", cacheKey)

	candidates, err := s.arenaRepo.FindValidatedWithCourts(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load arenas: %w", err)
	}

	weekday := schedule.WeekdayFromTime(date)
	dayStart := date
	dayEnd := date.AddDate(0, 0, 1)
	currentHour := s.clock.Now().Hour()

	results := make([]ArenaAvailabilityResponse, 0, len(candidates))
	for _, arena := range candidates {
		if query.ArenaID != "" && arena.ID.String() != query.ArenaID {
			continue
		}

		distance := arenas.DistanceMeters(query.Latitude, query.Longitude, arena.Address.Lat, arena.Address.Lon)
		if distance > dayAvailabilityRadiusMeters {
			continue
		}

		// Arenas without a schedule, or closed that day, are omitted.
		openHours, open := schedule.OpenHours(arena.OpeningHours, weekday)
		if !open {
			continue
		}

		arenaCourts, err := s.courtRepo.FindByArena(ctx, arena.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load courts: %w", err)
		}
		if len(arenaCourts) == 0 {
			continue
		}

		courtIDs := make([]uuid.UUID, 0, len(arenaCourts))
		for _, court := range arenaCourts {
			courtIDs = append(courtIDs, court.ID)
		}
		reservationsInDay, err := s.repo.FindByCourtsBetween(ctx, courtIDs, dayStart, dayEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to load reservations: %w", err)
		}
		byCourt := make(map[uuid.UUID][]Reservation, len(arenaCourts))
		for _, reservation := range reservationsInDay {
			byCourt[reservation.CourtID] = append(byCourt[reservation.CourtID], reservation)
		}

		courtItems := make([]CourtAvailabilityResponse, 0, len(arenaCourts))
		for _, court := range arenaCourts {
			courtItems = append(courtItems, CourtAvailabilityResponse{
				CourtID:        court.ID.String(),
				Court:          court.Name,
				ValuePerHour:   court.ValuePerHour,
				AvailableTimes: ComputeAvailability(openHours, byCourt[court.ID], date, s.location),
			})
		}

		SortCourts(courtItems, strategy, currentHour)

		if query.OnlyAvailable {
			courtItems = FilterOnlyAvailable(courtItems)
			if len(courtItems) == 0 {
				continue
			}
		}

		results = append(results, ArenaAvailabilityResponse{
			ArenaID:  arena.ID.String(),
			Arena:    arena.Name,
			Distance: distance,
			Courts:   courtItems,
		})
	}

	sortArenasByDistance(results)

	if err := s.cache.Set(ctx, cacheKey, results, constants.TTL_DAY_AVAILABILITY); err != nil {
		log.Printf("Failed to cache day availability: %v", err)
	}

	return results, nil
}

func (s *service) FindAllInMonth(ctx context.Context, query *FindAllInMonthQuery) ([]DayAvailabilityResponse, error) {
	arenaID, err := uuid.Parse(query.ArenaID)
	if err != nil {
		return nil, arenas.ErrArenaNotFound
	}

	cacheKey := constants.BuildMonthAvailabilityKey(query.ArenaID, query.Year, query.Month)

	var cached []DayAvailabilityResponse
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for month availability: %s", cacheKey)
		return cached, nil
	}
	log.Printf("Cache MISS for month availability: %s", cacheKey)

	monthStart := time.Date(query.Year, time.Month(query.Month), 1, 0, 0, 0, 0, s.location)
	monthEnd := monthStart.AddDate(0, 1, 0)

	reservationsInMonth, err := s.repo.FindByArenaBetween(ctx, arenaID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	perDay := make(map[int]int)
	for _, reservation := range reservationsInMonth {
		if !reservation.Status.IsActive() {
			continue
		}
		perDay[reservation.Date.In(s.location).Day()]++
	}

	now := s.clock.Now()
	daysInMonth := monthEnd.AddDate(0, 0, -1).Day()

	results := make([]DayAvailabilityResponse, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		// A day stays available while it is not already past and has room
		// for more reservations.
		endOfDay := time.Date(query.Year, time.Month(query.Month), day, 23, 59, 59, 0, s.location)
		results = append(results, DayAvailabilityResponse{
			Day:       day,
			Available: endOfDay.After(now) && perDay[day] < maxReservationsPerDay,
		})
	}

	if err := s.cache.Set(ctx, cacheKey, results, constants.TTL_MONTH_AVAILABILITY); err != nil {
		log.Printf("Failed to cache month availability: %v", err)
	}

	return results, nil
}

func (s *service) FindByUser(ctx context.Context, userID uuid.UUID) ([]UserReservationResponse, error) {
	reservationList, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	results := make([]UserReservationResponse, 0, len(reservationList))
	for _, reservation := range reservationList {
		results = append(results, UserReservationResponse{
			ID:     reservation.ID.String(),
			Date:   reservation.Date,
			Status: reservation.Status,
			Court:  reservation.Court.Name,
			Arena:  reservation.Court.Arena.Name,
		})
	}
	return results, nil
}

// Cancel transitions an owner's reservation to CANCELLED_BY_USER. The row is
// never deleted.
func (s *service) Cancel(ctx context.Context, reservationID, userID uuid.UUID) error {
	reservation, err := s.repo.FindByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if reservation.UserID != userID {
		return ErrNotReservationOwner
	}
	if !reservation.Status.IsActive() {
		return ErrAlreadyCancelled
	}

	if err := s.repo.UpdateStatus(ctx, reservationID, StatusCancelledByUser); err != nil {
		return err
	}

	reservation.Status = StatusCancelledByUser
	s.publishEvent(EventReservationCancelled, reservation)
	s.invalidateAvailability(ctx)

	return nil
}

// publishEvent emits a lifecycle event after commit; failures are logged,
// never surfaced.
func (s *service) publishEvent(eventType EventType, reservation *Reservation) {
	event := &LifecycleEvent{
		Type:          eventType,
		ReservationID: reservation.ID.String(),
		CourtID:       reservation.CourtID.String(),
		UserID:        reservation.UserID.String(),
		Date:          reservation.Date,
		Status:        reservation.Status,
		OccurredAt:    s.clock.Now(),
	}
	if err := s.producer.Publish(event); err != nil {
		log.Printf("Failed to publish reservation event: %v", err)
	}
}

// invalidateAvailability drops cached availability vectors after a write so
// listings converge quickly; reads tolerate the remaining staleness window.
func (s *service) invalidateAvailability(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.CACHE_KEY_DAY_AVAILABILITY+"*"); err != nil {
		log.Printf("Failed to invalidate day availability cache: %v", err)
	}
	if err := s.cache.DeletePattern(ctx, constants.CACHE_KEY_MONTH_AVAILABILITY+"*"); err != nil {
		log.Printf("Failed to invalidate month availability cache: %v", err)
	}
}

// truncateToHour snaps a timestamp to the start of its hour on the arena's
// wall clock.
func truncateToHour(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), 0, 0, 0, loc)
}

func sortArenasByDistance(items []ArenaAvailabilityResponse) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Distance < items[j].Distance
	})
}
