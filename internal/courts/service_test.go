package courts

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/gasparellodev/mono-repo2/internal/arenas"
)

type fakeCourtRepo struct {
	created *Court
}

func (f *fakeCourtRepo) Create(ctx context.Context, court *Court) error {
	court.ID = uuid.New()
	f.created = court
	return nil
}

func (f *fakeCourtRepo) FindByID(ctx context.Context, id uuid.UUID) (*Court, error) {
	return nil, ErrCourtNotFound
}

func (f *fakeCourtRepo) FindByIDWithSchedule(ctx context.Context, id uuid.UUID) (*Court, error) {
	return nil, ErrCourtNotFound
}

func (f *fakeCourtRepo) FindByArena(ctx context.Context, arenaID uuid.UUID) ([]Court, error) {
	return nil, nil
}

type fakeArenaGetter struct {
	arena *arenas.Arena
}

func (f *fakeArenaGetter) FindByID(ctx context.Context, id uuid.UUID) (*arenas.Arena, error) {
	if f.arena == nil || f.arena.ID != id {
		return nil, arenas.ErrArenaNotFound
	}
	return f.arena, nil
}

func validRequest(arenaID string) *CreateCourtRequest {
	return &CreateCourtRequest{
		Name:         "Quadra 01",
		TypeCourt:    string(CourtFloorSand),
		SportType:    string(SportTypeBeachTennis),
		ValuePerHour: "150.00",
		CoveredCourt: true,
		ArenaID:      arenaID,
	}
}

func TestCreate_RejectsUnknownArena(t *testing.T) {
	svc := NewService(&fakeCourtRepo{}, &fakeArenaGetter{})

	_, err := svc.Create(context.Background(), validRequest(uuid.NewString()))
	if !errors.Is(err, arenas.ErrArenaNotFound) {
		t.Fatalf("expected ErrArenaNotFound, got %v", err)
	}
}

func TestCreate_ParsesHourlyValue(t *testing.T) {
	arena := &arenas.Arena{ID: uuid.New()}
	repo := &fakeCourtRepo{}
	svc := NewService(repo, &fakeArenaGetter{arena: arena})

	court, err := svc.Create(context.Background(), validRequest(arena.ID.String()))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if court.ValuePerHour != 150.00 {
		t.Errorf("value per hour = %f, want 150.00", court.ValuePerHour)
	}
	if repo.created == nil {
		t.Fatal("expected court to be persisted")
	}
}

func TestCreate_RejectsInvalidInputs(t *testing.T) {
	arena := &arenas.Arena{ID: uuid.New()}
	svc := NewService(&fakeCourtRepo{}, &fakeArenaGetter{arena: arena})

	tests := []struct {
		name    string
		mutate  func(req *CreateCourtRequest)
		wantErr error
	}{
		{"unknown sport", func(r *CreateCourtRequest) { r.SportType = "CRICKET" }, ErrInvalidSportType},
		{"unknown floor", func(r *CreateCourtRequest) { r.TypeCourt = "ICE" }, ErrInvalidCourtFloor},
		{"negative value", func(r *CreateCourtRequest) { r.ValuePerHour = "-10.00" }, ErrInvalidHourValue},
		{"non-numeric value", func(r *CreateCourtRequest) { r.ValuePerHour = "abc" }, ErrInvalidHourValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(arena.ID.String())
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
