package repositories

import (
	"context"
	"strings"

	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/kvstore"
	"github.com/signifi/platform/internal/seed"
)

// UserRepository owns the users collection.
type UserRepository struct {
	*Collection[models.User]
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(store kvstore.Store) *UserRepository {
	return &UserRepository{
		Collection: NewCollection(store, kvstore.KeyUsers,
			func(u models.User) int64 { return u.ID },
			seed.Users),
	}
}

// GetByEmail scans for a user with the given email (case-insensitive).
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, bool, error) {
	users, err := r.LoadAll(ctx)
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

// EmailExists checks if an email is already registered.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok, err := r.GetByEmail(ctx, email)
	return ok, err
}

// Append adds a user with the next id and persists the collection. It
// returns the stored user.
func (r *UserRepository) Append(ctx context.Context, user models.User) (models.User, error) {
	users, err := r.LoadAll(ctx)
	if err != nil {
		return models.User{}, err
	}
	user.ID = r.NextID(users)
	users = append(users, user)
	if err := r.Save(ctx, users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdatePassword rewrites the password of the user with the given email.
// A missing user is a silent no-op; the bool reports whether a record
// changed.
func (r *UserRepository) UpdatePassword(ctx context.Context, email, newPassword string) (bool, error) {
	users, err := r.LoadAll(ctx)
	if err != nil {
		return false, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			users[i].Password = newPassword
			if err := r.Save(ctx, users); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
