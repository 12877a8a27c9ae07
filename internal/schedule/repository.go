package schedule

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, entry *OpeningHours) error
	FindByArena(ctx context.Context, arenaID uuid.UUID) ([]OpeningHours, error)
	ExistsForWeekday(ctx context.Context, arenaID uuid.UUID, day Weekday) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *OpeningHours) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindByArena(ctx context.Context, arenaID uuid.UUID) ([]OpeningHours, error) {
	var entries []OpeningHours
	err := r.db.WithContext(ctx).
		Where("arena_id = ?", arenaID).
		Order("week_day").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) ExistsForWeekday(ctx context.Context, arenaID uuid.UUID, day Weekday) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OpeningHours{}).
		Where("arena_id = ? AND week_day = ?", arenaID, day).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
