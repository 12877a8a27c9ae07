package courts

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/gasparellodev/mono-repo2/internal/arenas"
)

var (
	ErrInvalidSportType  = errors.New("invalid sport type")
	ErrInvalidCourtFloor = errors.New("invalid court floor type")
	ErrInvalidHourValue  = errors.New("invalid value per hour")
)

// ArenaGetter is the slice of the arenas repository needed to confirm the
// target arena exists before attaching a court to it.
type ArenaGetter interface {
	FindByID(ctx context.Context, id uuid.UUID) (*arenas.Arena, error)
}

type Service interface {
	Create(ctx context.Context, req *CreateCourtRequest) (*Court, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Court, error)
	FindByArena(ctx context.Context, arenaID uuid.UUID) ([]Court, error)
}

type service struct {
	repo      Repository
	arenaRepo ArenaGetter
}

func NewService(repo Repository, arenaRepo ArenaGetter) Service {
	return &service{
		repo:      repo,
		arenaRepo: arenaRepo,
	}
}

func (s *service) Create(ctx context.Context, req *CreateCourtRequest) (*Court, error) {
	if !isValidSportType(req.SportType) {
		return nil, ErrInvalidSportType
	}
	if !isValidCourtFloor(req.TypeCourt) {
		return nil, ErrInvalidCourtFloor
	}

	valuePerHour, err := strconv.ParseFloat(req.ValuePerHour, 64)
	if err != nil || valuePerHour <= 0 {
		return nil, ErrInvalidHourValue
	}

	arenaID, err := uuid.Parse(req.ArenaID)
	if err != nil {
		return nil, fmt.Errorf("invalid arena id: %w", err)
	}

	if _, err := s.arenaRepo.FindByID(ctx, arenaID); err != nil {
		return nil, err
	}

	court := &Court{
		Name:              req.Name,
		TypeCourt:         CourtFloor(req.TypeCourt),
		SportType:         SportType(req.SportType),
		ValuePerHour:      valuePerHour,
		CoveredCourt:      req.CoveredCourt,
		CourtDigitalTimer: req.CourtDigitalTimer,
		CourtCamReplay:    req.CourtCamReplay,
		ArenaID:           arenaID,
	}

	if err := s.repo.Create(ctx, court); err != nil {
		return nil, fmt.Errorf("failed to create court: %w", err)
	}

	return court, nil
}

func (s *service) FindByID(ctx context.Context, id uuid.UUID) (*Court, error) {
	return s.repo.FindByIDWithSchedule(ctx, id)
}

func (s *service) FindByArena(ctx context.Context, arenaID uuid.UUID) ([]Court, error) {
	return s.repo.FindByArena(ctx, arenaID)
}

func isValidSportType(sport string) bool {
	switch SportType(sport) {
	case SportTypeFootball, SportTypeFutsal, SportTypeBeachTennis,
		SportTypeVolleyball, SportTypeTennis:
		return true
	default:
		return false
	}
}

func isValidCourtFloor(floor string) bool {
	switch CourtFloor(floor) {
	case CourtFloorSand, CourtFloorGrass, CourtFloorSynthetic, CourtFloorConcrete:
		return true
	default:
		return false
	}
}
