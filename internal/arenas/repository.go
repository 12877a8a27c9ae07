package arenas

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrArenaNotFound = errors.New("arena not found")

type Repository interface {
	CreateWithAddress(ctx context.Context, arena *Arena, address *Address) error
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Arena, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Arena, error)
	ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error)

	// FindValidatedWithCourts returns validated arenas that have at least one
	// registered court, with address preloaded. nameFilter narrows by
	// case-insensitive substring when non-empty.
	FindValidatedWithCourts(ctx context.Context, nameFilter string) ([]Arena, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithAddress persists the address and the arena in one transaction so
// a failed arena insert never leaves an orphan address behind.
func (r *repository) CreateWithAddress(ctx context.Context, arena *Arena, address *Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(address).Error; err != nil {
			return fmt.Errorf("failed to create address: %w", err)
		}
		arena.AddressID = address.ID
		if err := tx.Create(arena).Error; err != nil {
			return fmt.Errorf("failed to create arena: %w", err)
		}
		return nil
	})
}

func (r *repository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Arena, error) {
	var arena Arena
	err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("OpeningHours").
		First(&arena, "owner_id = ?", ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArenaNotFound
		}
		return nil, err
	}
	return &arena, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Arena, error) {
	var arena Arena
	err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("OpeningHours").
		First(&arena, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArenaNotFound
		}
		return nil, err
	}
	return &arena, nil
}

func (r *repository) ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Arena{}).Where("cnpj = ?", cnpj).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) FindValidatedWithCourts(ctx context.Context, nameFilter string) ([]Arena, error) {
	var arenas []Arena

	query := r.db.WithContext(ctx).
		Preload("Address").
		Preload("OpeningHours").
		Where("is_validated IS NOT NULL").
		Where("EXISTS (SELECT 1 FROM courts WHERE courts.arena_id = arenas.id)")

	if nameFilter != "" {
		query = query.Where("name ILIKE ?", fmt.Sprintf("%%%s%%", nameFilter))
	}

	if err := query.Find(&arenas).Error; err != nil {
		return nil, err
	}
	return arenas, nil
}
