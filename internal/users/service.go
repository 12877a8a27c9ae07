package users

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrFieldUnchanged = errors.New("field value must be different from the current one")
	ErrInvalidField   = errors.New("invalid field value")
)

// fieldUpdater validates an incoming value and applies it to the user.
// Each profile field that supports partial updates registers one.
type fieldUpdater func(user *User, value string) error

type Service interface {
	GetProfile(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*User, error)
}

type service struct {
	repo     Repository
	updaters map[string]fieldUpdater
}

func NewService(repo Repository) Service {
	s := &service{repo: repo}
	s.updaters = map[string]fieldUpdater{
		"first_name": func(user *User, value string) error {
			if user.FirstName == value {
				return fmt.Errorf("first_name: %w", ErrFieldUnchanged)
			}
			user.FirstName = value
			return nil
		},
		"last_name": func(user *User, value string) error {
			if user.LastName == value {
				return fmt.Errorf("last_name: %w", ErrFieldUnchanged)
			}
			user.LastName = value
			return nil
		},
		"nickname": func(user *User, value string) error {
			if user.Nickname == value {
				return fmt.Errorf("nickname: %w", ErrFieldUnchanged)
			}
			user.Nickname = value
			return nil
		},
		"cellphone": func(user *User, value string) error {
			if len(value) < 9 || len(value) > 12 {
				return fmt.Errorf("cellphone: %w", ErrInvalidField)
			}
			if user.Cellphone == value {
				return fmt.Errorf("cellphone: %w", ErrFieldUnchanged)
			}
			user.Cellphone = value
			return nil
		},
		"avatar": func(user *User, value string) error {
			if user.Avatar != nil && *user.Avatar == value {
				return fmt.Errorf("avatar: %w", ErrFieldUnchanged)
			}
			user.Avatar = &value
			return nil
		},
		"favorite_sport": func(user *User, value string) error {
			if !IsValidFavoriteSport(value) {
				return fmt.Errorf("favorite_sport: %w", ErrInvalidField)
			}
			if user.FavoriteSport == FavoriteSport(value) {
				return fmt.Errorf("favorite_sport: %w", ErrFieldUnchanged)
			}
			user.FavoriteSport = FavoriteSport(value)
			return nil
		},
		"favorite_time": func(user *User, value string) error {
			if !IsValidFavoriteTime(value) {
				return fmt.Errorf("favorite_time: %w", ErrInvalidField)
			}
			if user.FavoriteTime == FavoriteTime(value) {
				return fmt.Errorf("favorite_time: %w", ErrFieldUnchanged)
			}
			user.FavoriteTime = FavoriteTime(value)
			return nil
		},
	}
	return s
}

func (s *service) GetProfile(ctx context.Context, userID string) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Only fields present in the payload go through their updater.
	for field, value := range req.Fields() {
		updater, ok := s.updaters[field]
		if !ok {
			continue
		}
		if err := updater(user, value); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
