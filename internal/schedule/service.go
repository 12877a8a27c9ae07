package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrDuplicateWeekday = errors.New("there is already a schedule for this day of the week")
	ErrInvalidWeekday   = errors.New("invalid week day")
	ErrInvalidHours     = errors.New("invalid opening hours")
)

type Service interface {
	Create(ctx context.Context, req *CreateOpeningHoursRequest) (*OpeningHours, error)
	FindByArena(ctx context.Context, arenaID uuid.UUID) ([]OpeningHours, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req *CreateOpeningHoursRequest) (*OpeningHours, error) {
	day := Weekday(req.WeekDay)
	if !day.IsValid() {
		return nil, ErrInvalidWeekday
	}
	if req.Opening < 0 || req.Closing > 24 || req.Opening >= req.Closing {
		return nil, ErrInvalidHours
	}

	arenaID, err := uuid.Parse(req.ArenaID)
	if err != nil {
		return nil, fmt.Errorf("invalid arena id: %w", err)
	}

	exists, err := s.repo.ExistsForWeekday(ctx, arenaID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to check weekday schedule: %w", err)
	}
	if exists {
		return nil, ErrDuplicateWeekday
	}

	entry := &OpeningHours{
		ArenaID:      arenaID,
		WeekDay:      day,
		Opening:      req.Opening,
		Closing:      req.Closing,
		LunchOpening: req.LunchOpening,
		LunchClosing: req.LunchClosing,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create opening hours: %w", err)
	}

	return entry, nil
}

func (s *service) FindByArena(ctx context.Context, arenaID uuid.UUID) ([]OpeningHours, error) {
	return s.repo.FindByArena(ctx, arenaID)
}
