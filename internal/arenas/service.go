package arenas

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"github.com/gasparellodev/mono-repo2/internal/shared/constants"
	"github.com/gasparellodev/mono-repo2/internal/users"
	"github.com/gasparellodev/mono-repo2/pkg/cache"
)

const (
	searchRadiusMeters = 50000 // name search
	nearbyRadiusMeters = 15000 // nearby listing
)

var (
	ErrOwnerTypeMismatch   = errors.New("owner must be an arena-type user")
	ErrDuplicateBusinessID = errors.New("an arena with this CNPJ already exists")
)

// UserGetter is the slice of the users repository this service needs to check
// the owner's role.
type UserGetter interface {
	GetByID(ctx context.Context, id string) (*users.User, error)
}

type Service interface {
	Create(ctx context.Context, req *CreateArenaRequest, ownerID uuid.UUID) (*Arena, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*Arena, error)
	SearchByLocation(ctx context.Context, latitude, longitude float64, input string) ([]ArenaDistanceResponse, error)
	GetNearby(ctx context.Context, latitude, longitude float64) ([]ArenaDistanceResponse, error)
}

type service struct {
	repo  Repository
	users UserGetter
	cache cache.Service
}

func NewService(repo Repository, userGetter UserGetter, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		users: userGetter,
		cache: cacheService,
	}
}

func (s *service) Create(ctx context.Context, req *CreateArenaRequest, ownerID uuid.UUID) (*Arena, error) {
	owner, err := s.users.GetByID(ctx, ownerID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}
	if owner.Role != users.RoleArena {
		return nil, ErrOwnerTypeMismatch
	}

	exists, err := s.repo.ExistsByCNPJ(ctx, req.CNPJ)
	if err != nil {
		return nil, fmt.Errorf("failed to check CNPJ: %w", err)
	}
	if exists {
		return nil, ErrDuplicateBusinessID
	}

	address := &Address{
		Description: req.Description,
		Lat:         req.Lat,
		Lon:         req.Lon,
	}
	arena := &Arena{
		Name:    req.Name,
		CNPJ:    req.CNPJ,
		Phone:   req.Phone,
		OwnerID: ownerID,
	}

	if err := s.repo.CreateWithAddress(ctx, arena, address); err != nil {
		return nil, err
	}
	arena.Address = *address

	return arena, nil
}

func (s *service) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*Arena, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *service) SearchByLocation(ctx context.Context, latitude, longitude float64, input string) ([]ArenaDistanceResponse, error) {
	cacheKey := constants.BuildArenaSearchKey(latitude, longitude, input)

	var cached []ArenaDistanceResponse
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for arena search: %s", cacheKey)
		return cached, nil
	}
	log.Printf("Cache MISS for arena search: %s", cacheKey)

	results, err := s.rankByDistance(ctx, latitude, longitude, input, searchRadiusMeters)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, results, constants.TTL_ARENA_SEARCH); err != nil {
		log.Printf("Failed to cache arena search: %v", err)
	}

	return results, nil
}

func (s *service) GetNearby(ctx context.Context, latitude, longitude float64) ([]ArenaDistanceResponse, error) {
	cacheKey := constants.BuildArenaNearbyKey(latitude, longitude)

	var cached []ArenaDistanceResponse
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for nearby arenas: %s", cacheKey)
		return cached, nil
	}
	log.Printf("Cache MISS for nearby arenas: %s", cacheKey)

	results, err := s.rankByDistance(ctx, latitude, longitude, "", nearbyRadiusMeters)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, results, constants.TTL_ARENA_SEARCH); err != nil {
		log.Printf("Failed to cache nearby arenas: %v", err)
	}

	return results, nil
}

// rankByDistance filters validated arenas with registered courts by radius and
// sorts them by ascending distance from the caller.
func (s *service) rankByDistance(ctx context.Context, latitude, longitude float64, nameFilter string, radiusMeters float64) ([]ArenaDistanceResponse, error) {
	arenas, err := s.repo.FindValidatedWithCourts(ctx, nameFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to load arenas: %w", err)
	}

	results := make([]ArenaDistanceResponse, 0, len(arenas))
	for _, arena := range arenas {
		distance := DistanceMeters(latitude, longitude, arena.Address.Lat, arena.Address.Lon)
		if distance > radiusMeters {
			continue
		}
		results = append(results, ArenaDistanceResponse{
			ID:       arena.ID.String(),
			Name:     arena.Name,
			Distance: distance,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	return results, nil
}
