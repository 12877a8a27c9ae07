package courts

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCourtNotFound = errors.New("court not found")

type Repository interface {
	Create(ctx context.Context, court *Court) error
	FindByID(ctx context.Context, id uuid.UUID) (*Court, error)

	// FindByIDWithSchedule eager-loads the arena and its weekly opening hours,
	// which the reservation admission flow needs in one read.
	FindByIDWithSchedule(ctx context.Context, id uuid.UUID) (*Court, error)
	FindByArena(ctx context.Context, arenaID uuid.UUID) ([]Court, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, court *Court) error {
	return r.db.WithContext(ctx).Create(court).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Court, error) {
	var court Court
	err := r.db.WithContext(ctx).First(&court, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return &court, nil
}

func (r *repository) FindByIDWithSchedule(ctx context.Context, id uuid.UUID) (*Court, error) {
	var court Court
	err := r.db.WithContext(ctx).
		Preload("Arena").
		Preload("Arena.Address").
		Preload("Arena.OpeningHours").
		First(&court, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return &court, nil
}

func (r *repository) FindByArena(ctx context.Context, arenaID uuid.UUID) ([]Court, error) {
	var courts []Court
	err := r.db.WithContext(ctx).
		Where("arena_id = ?", arenaID).
		Order("name").
		Find(&courts).Error
	if err != nil {
		return nil, err
	}
	return courts, nil
}
