package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotAlreadyReserved = errors.New("there is already a reservation for this time")
)

type Repository interface {
	// CreateReservation atomically verifies the slot is free and inserts the
	// row. Returns ErrSlotAlreadyReserved when an active reservation holds
	// the same (court, truncated hour).
	CreateReservation(ctx context.Context, reservation *Reservation) error

	FindActiveByCourtAndTimestamp(ctx context.Context, courtID uuid.UUID, timestamp time.Time) (*Reservation, error)
	FindByCourtsBetween(ctx context.Context, courtIDs []uuid.UUID, start, end time.Time) ([]Reservation, error)
	FindByArenaBetween(ctx context.Context, arenaID uuid.UUID, start, end time.Time) ([]Reservation, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Reservation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateReservation runs the conflict check and the insert in one
// transaction. The existence check takes a row lock on any active reservation
// for the slot; the partial unique index on (court_id, date) backstops the
// race where two transactions pass the check with no row to lock.
func (r *repository) CreateReservation(ctx context.Context, reservation *Reservation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Reservation
		err := tx.
			Where("court_id = ? AND date = ?", reservation.CourtID, reservation.Date).
			Where("status NOT IN ?", []Status{StatusCancelledByUser, StatusCancelledByTransaction}).
			Set("gorm:query_option", "FOR UPDATE").
			First(&existing).Error

		if err == nil {
			return ErrSlotAlreadyReserved
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check slot: %w", err)
		}

		if err := tx.Create(reservation).Error; err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotAlreadyReserved) || isUniqueViolation(err) {
			return ErrSlotAlreadyReserved
		}
		return err
	}
	return nil
}

// isUniqueViolation detects the partial unique index firing under concurrent
// inserts.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "unique_active_reservation_per_slot") ||
		strings.Contains(err.Error(), "duplicate key")
}

func (r *repository) FindActiveByCourtAndTimestamp(ctx context.Context, courtID uuid.UUID, timestamp time.Time) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND date = ?", courtID, timestamp).
		Where("status NOT IN ?", []Status{StatusCancelledByUser, StatusCancelledByTransaction}).
		First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) FindByCourtsBetween(ctx context.Context, courtIDs []uuid.UUID, start, end time.Time) ([]Reservation, error) {
	var reservations []Reservation
	err := r.db.WithContext(ctx).
		Where("court_id IN ?", courtIDs).
		Where("date >= ? AND date < ?", start, end).
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *repository) FindByArenaBetween(ctx context.Context, arenaID uuid.UUID, start, end time.Time) ([]Reservation, error) {
	var reservations []Reservation
	err := r.db.WithContext(ctx).
		Joins("JOIN courts ON courts.id = reservations.court_id").
		Where("courts.arena_id = ?", arenaID).
		Where("reservations.date >= ? AND reservations.date < ?", start, end).
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *repository) FindByUser(ctx context.Context, userID uuid.UUID) ([]Reservation, error) {
	var reservations []Reservation
	err := r.db.WithContext(ctx).
		Preload("Court").
		Preload("Court.Arena").
		Preload("Court.Arena.Address").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).First(&reservation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result := r.db.WithContext(ctx).Model(&Reservation{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}
