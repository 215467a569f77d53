package repository

import (
	"context"
	"time"

	"oneearth/models"
	"oneearth/store"

	"github.com/gosimple/slug"
)

type ChallengeRepository struct {
	t     *table[models.Challenge]
	newID store.IDFunc
	now   func() time.Time
}

func (r *ChallengeRepository) List(ctx context.Context) ([]models.Challenge, error) {
	return r.t.list(ctx)
}

func (r *ChallengeRepository) GetByID(ctx context.Context, id string) (*models.Challenge, error) {
	return r.t.get(ctx, id)
}

// GetBySlug returns the first challenge with the slug. Slugs are not unique.
func (r *ChallengeRepository) GetBySlug(ctx context.Context, s string) (*models.Challenge, error) {
	return r.t.first(ctx, func(c *models.Challenge) bool { return c.Slug == s })
}

func (r *ChallengeRepository) ListByHostID(ctx context.Context, hostID string) ([]models.Challenge, error) {
	return r.t.filter(ctx, func(c *models.Challenge) bool { return c.HostID == hostID })
}

// Create assigns id, creation time and, when missing, a slug derived from the title.
func (r *ChallengeRepository) Create(ctx context.Context, c models.Challenge) (*models.Challenge, error) {
	c.ID = r.newID()
	c.CreatedAt = r.now()
	if c.Slug == "" {
		c.Slug = slug.Make(c.Title)
	}
	if err := r.t.insert(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChallengeRepository) Update(ctx context.Context, c models.Challenge) (*models.Challenge, error) {
	_, after, err := r.t.mutate(ctx, c.ID, func(stored *models.Challenge) { *stored = c })
	return after, err
}

func (r *ChallengeRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.t.remove(ctx, id)
}
