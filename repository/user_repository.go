package repository

import (
	"context"
	"time"

	"oneearth/models"
	"oneearth/store"
)

type UserRepository struct {
	t     *table[models.User]
	newID store.IDFunc
	now   func() time.Time
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	return r.t.list(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.t.get(ctx, id)
}

// GetByEmail matches the address exactly.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.t.first(ctx, func(u *models.User) bool { return u.Email == email })
}

// Create stores a new user with a fresh id, zero XP and the current time.
func (r *UserRepository) Create(ctx context.Context, u models.User) (*models.User, error) {
	u.ID = r.newID()
	u.XP = 0
	u.CreatedAt = r.now()
	if err := r.t.insert(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Update replaces the stored user with the same id.
func (r *UserRepository) Update(ctx context.Context, u models.User) (*models.User, error) {
	_, after, err := r.t.mutate(ctx, u.ID, func(stored *models.User) { *stored = u })
	return after, err
}

// AddXP increments a user's XP counter.
func (r *UserRepository) AddXP(ctx context.Context, id string, xp int) (*models.User, error) {
	_, after, err := r.t.mutate(ctx, id, func(u *models.User) { u.XP += xp })
	return after, err
}

// CreateIfEmailFree is Create guarded by an email uniqueness check under the same lock.
// When the email is taken the stored user is returned and created is false.
func (r *UserRepository) CreateIfEmailFree(ctx context.Context, u models.User) (stored *models.User, created bool, err error) {
	u.ID = r.newID()
	u.XP = 0
	u.CreatedAt = r.now()
	rec, created, err := r.t.insertIfAbsent(ctx, func(existing *models.User) bool { return existing.Email == u.Email }, u)
	if err != nil {
		return nil, false, err
	}
	return &rec, created, nil
}
