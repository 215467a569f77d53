package repository

import (
	"context"
	"time"

	"oneearth/models"
	"oneearth/store"
)

type RewardRepository struct {
	t     *table[models.Reward]
	newID store.IDFunc
	now   func() time.Time
}

func (r *RewardRepository) List(ctx context.Context) ([]models.Reward, error) {
	return r.t.list(ctx)
}

func (r *RewardRepository) GetByID(ctx context.Context, id string) (*models.Reward, error) {
	return r.t.get(ctx, id)
}

func (r *RewardRepository) ListByHostID(ctx context.Context, hostID string) ([]models.Reward, error) {
	return r.t.filter(ctx, func(rw *models.Reward) bool { return rw.HostID == hostID })
}

func (r *RewardRepository) Create(ctx context.Context, rw models.Reward) (*models.Reward, error) {
	rw.ID = r.newID()
	rw.CreatedAt = r.now()
	if err := r.t.insert(ctx, rw); err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *RewardRepository) Update(ctx context.Context, rw models.Reward) (*models.Reward, error) {
	_, after, err := r.t.mutate(ctx, rw.ID, func(stored *models.Reward) { *stored = rw })
	return after, err
}

func (r *RewardRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.t.remove(ctx, id)
}
