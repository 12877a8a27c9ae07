package users

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	user    *User
	saved   *User
	saveErr error
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*User, error) {
	if f.user == nil || f.user.ID.String() != id {
		return nil, ErrUserNotFound
	}
	u := *f.user
	return &u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *User) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = user
	return nil
}

func newTestUser() *User {
	return &User{
		ID:            uuid.New(),
		FirstName:     "Gabriel",
		LastName:      "Silva",
		Nickname:      "Gabs",
		Cellphone:     "11999990000",
		FavoriteSport: FavoriteSportFutsal,
		FavoriteTime:  FavoriteTimeNight,
		Email:         "gabriel@example.com",
		Role:          RoleUser,
	}
}

func strPtr(s string) *string { return &s }

func TestUpdateProfile_AppliesOnlyPresentFields(t *testing.T) {
	user := newTestUser()
	repo := &fakeUserRepo{user: user}
	svc := NewService(repo)

	updated, err := svc.UpdateProfile(context.Background(), user.ID.String(), &UpdateProfileRequest{
		Nickname: strPtr("Biel"),
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Nickname != "Biel" {
		t.Errorf("expected nickname Biel, got %q", updated.Nickname)
	}
	if updated.FirstName != "Gabriel" {
		t.Errorf("absent fields must not change, got first name %q", updated.FirstName)
	}
	if repo.saved == nil {
		t.Fatal("expected user to be persisted")
	}
}

func TestUpdateProfile_RejectsUnchangedValue(t *testing.T) {
	user := newTestUser()
	repo := &fakeUserRepo{user: user}
	svc := NewService(repo)

	_, err := svc.UpdateProfile(context.Background(), user.ID.String(), &UpdateProfileRequest{
		Nickname: strPtr("Gabs"),
	})
	if !errors.Is(err, ErrFieldUnchanged) {
		t.Fatalf("expected ErrFieldUnchanged, got %v", err)
	}
	if repo.saved != nil {
		t.Error("rejected update must not be persisted")
	}
}

func TestUpdateProfile_ValidatesFieldValues(t *testing.T) {
	tests := []struct {
		name string
		req  *UpdateProfileRequest
	}{
		{"short cellphone", &UpdateProfileRequest{Cellphone: strPtr("123")}},
		{"unknown sport", &UpdateProfileRequest{FavoriteSport: strPtr("CHESS")}},
		{"unknown time", &UpdateProfileRequest{FavoriteTime: strPtr("DAWN")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := newTestUser()
			repo := &fakeUserRepo{user: user}
			svc := NewService(repo)

			_, err := svc.UpdateProfile(context.Background(), user.ID.String(), tt.req)
			if !errors.Is(err, ErrInvalidField) {
				t.Fatalf("expected ErrInvalidField, got %v", err)
			}
		})
	}
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewService(repo)

	_, err := svc.UpdateProfile(context.Background(), uuid.NewString(), &UpdateProfileRequest{
		Nickname: strPtr("Biel"),
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
