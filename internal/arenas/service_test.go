package arenas

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gasparellodev/mono-repo2/internal/users"
	"github.com/gasparellodev/mono-repo2/pkg/cache"
)

type fakeArenaRepo struct {
	arenas     []Arena
	cnpjExists bool
	created    *Arena
}

func (f *fakeArenaRepo) CreateWithAddress(ctx context.Context, arena *Arena, address *Address) error {
	address.ID = uuid.New()
	arena.ID = uuid.New()
	arena.AddressID = address.ID
	f.created = arena
	return nil
}

func (f *fakeArenaRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Arena, error) {
	for i := range f.arenas {
		if f.arenas[i].OwnerID == ownerID {
			return &f.arenas[i], nil
		}
	}
	return nil, ErrArenaNotFound
}

func (f *fakeArenaRepo) FindByID(ctx context.Context, id uuid.UUID) (*Arena, error) {
	for i := range f.arenas {
		if f.arenas[i].ID == id {
			return &f.arenas[i], nil
		}
	}
	return nil, ErrArenaNotFound
}

func (f *fakeArenaRepo) ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	return f.cnpjExists, nil
}

func (f *fakeArenaRepo) FindValidatedWithCourts(ctx context.Context, nameFilter string) ([]Arena, error) {
	return f.arenas, nil
}

type fakeUserGetter struct {
	role users.Role
}

func (f *fakeUserGetter) GetByID(ctx context.Context, id string) (*users.User, error) {
	return &users.User{ID: uuid.New(), Role: f.role}, nil
}

// noopCache misses every Get so services always hit the repository.
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

func validatedArena(name string, lat, lon float64) Arena {
	now := time.Now()
	return Arena{
		ID:          uuid.New(),
		Name:        name,
		IsValidated: &now,
		Address:     Address{Lat: lat, Lon: lon},
	}
}

func TestCreate_RejectsNonArenaOwner(t *testing.T) {
	svc := NewService(&fakeArenaRepo{}, &fakeUserGetter{role: users.RoleUser}, noopCache{})

	_, err := svc.Create(context.Background(), &CreateArenaRequest{
		Name: "Arena Central", CNPJ: "12345678000199",
	}, uuid.New())
	if !errors.Is(err, ErrOwnerTypeMismatch) {
		t.Fatalf("expected ErrOwnerTypeMismatch, got %v", err)
	}
}

func TestCreate_RejectsDuplicateCNPJ(t *testing.T) {
	repo := &fakeArenaRepo{cnpjExists: true}
	svc := NewService(repo, &fakeUserGetter{role: users.RoleArena}, noopCache{})

	_, err := svc.Create(context.Background(), &CreateArenaRequest{
		Name: "Arena Central", CNPJ: "12345678000199",
	}, uuid.New())
	if !errors.Is(err, ErrDuplicateBusinessID) {
		t.Fatalf("expected ErrDuplicateBusinessID, got %v", err)
	}
	if repo.created != nil {
		t.Error("rejected arena must not be persisted")
	}
}

func TestCreate_PersistsArenaWithAddress(t *testing.T) {
	repo := &fakeArenaRepo{}
	svc := NewService(repo, &fakeUserGetter{role: users.RoleArena}, noopCache{})
	ownerID := uuid.New()

	arena, err := svc.Create(context.Background(), &CreateArenaRequest{
		Name:        "Arena Central",
		CNPJ:        "12345678000199",
		Phone:       "11999990000",
		Description: "Rua das Quadras, 100",
		Lat:         -23.5505,
		Lon:         -46.6333,
	}, ownerID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if arena.OwnerID != ownerID {
		t.Errorf("owner not set, got %s", arena.OwnerID)
	}
	if arena.Address.Lat != -23.5505 || arena.Address.Lon != -46.6333 {
		t.Errorf("address coordinates not stored: %+v", arena.Address)
	}
}

func TestSearchByLocation_FiltersByRadiusAndSortsByDistance(t *testing.T) {
	// Caller in central São Paulo; Campinas (~88 km) is outside the 50 km
	// search radius, the two city arenas are inside.
	repo := &fakeArenaRepo{arenas: []Arena{
		validatedArena("Arena Campinas", -22.9056, -47.0608),
		validatedArena("Arena Morumbi", -23.6, -46.72),
		validatedArena("Arena Sé", -23.551, -46.634),
	}}
	svc := NewService(repo, &fakeUserGetter{role: users.RoleArena}, noopCache{})

	results, err := svc.SearchByLocation(context.Background(), -23.5505, -46.6333, "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 arenas within 50 km, got %d", len(results))
	}
	if results[0].Name != "Arena Sé" || results[1].Name != "Arena Morumbi" {
		t.Errorf("results not ordered by distance: %v", results)
	}
	if results[0].Distance >= results[1].Distance {
		t.Errorf("distances not ascending: %f >= %f", results[0].Distance, results[1].Distance)
	}
}

func TestGetNearby_UsesTighterRadius(t *testing.T) {
	// Morumbi arena is ~10 km out (inside 15 km), Guarulhos ~20 km (outside).
	repo := &fakeArenaRepo{arenas: []Arena{
		validatedArena("Arena Morumbi", -23.6, -46.72),
		validatedArena("Arena Guarulhos", -23.45, -46.48),
	}}
	svc := NewService(repo, &fakeUserGetter{role: users.RoleArena}, noopCache{})

	results, err := svc.GetNearby(context.Background(), -23.5505, -46.6333)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 arena within 15 km, got %d", len(results))
	}
	if results[0].Name != "Arena Morumbi" {
		t.Errorf("expected Arena Morumbi, got %s", results[0].Name)
	}
}
