package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oneearth/models"
	"oneearth/store"
)

type CompletionRepository struct {
	t     *table[models.ChallengeCompletion]
	newID store.IDFunc
	now   func() time.Time

	users      *UserRepository
	challenges *ChallengeRepository
	awardOnce  bool
	onAward    func(models.User, models.ChallengeCompletion, int)
}

func (r *CompletionRepository) List(ctx context.Context) ([]models.ChallengeCompletion, error) {
	return r.t.list(ctx)
}

func (r *CompletionRepository) GetByID(ctx context.Context, id string) (*models.ChallengeCompletion, error) {
	return r.t.get(ctx, id)
}

func (r *CompletionRepository) ListByUserID(ctx context.Context, userID string) ([]models.ChallengeCompletion, error) {
	return r.t.filter(ctx, func(c *models.ChallengeCompletion) bool { return c.UserID == userID })
}

func (r *CompletionRepository) ListByChallengeID(ctx context.Context, challengeID string) ([]models.ChallengeCompletion, error) {
	return r.t.filter(ctx, func(c *models.ChallengeCompletion) bool { return c.ChallengeID == challengeID })
}

// Create records a pending completion for the pair. If one already exists for the same
// user and challenge it is returned unchanged and created is false.
func (r *CompletionRepository) Create(ctx context.Context, userID, challengeID string) (c *models.ChallengeCompletion, created bool, err error) {
	now := r.now()
	rec := models.ChallengeCompletion{
		ID:          r.newID(),
		UserID:      userID,
		ChallengeID: challengeID,
		Status:      models.CompletionPending,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
	stored, created, err := r.t.insertIfAbsent(ctx, func(existing *models.ChallengeCompletion) bool {
		return existing.UserID == userID && existing.ChallengeID == challengeID
	}, rec)
	if err != nil {
		return nil, false, err
	}
	return &stored, created, nil
}

// Update replaces the stored completion and bumps UpdatedAt. When the new status is
// approved, the user earns the challenge's XP value. Unless AwardXPOnce is set this
// happens on every such update, including re-approvals.
//
// A missing challenge or user skips the award without failing the update.
func (r *CompletionRepository) Update(ctx context.Context, c models.ChallengeCompletion) (*models.ChallengeCompletion, error) {
	before, after, err := r.t.mutate(ctx, c.ID, func(stored *models.ChallengeCompletion) {
		*stored = c
		stored.UpdatedAt = r.now()
	})
	if err != nil {
		return nil, err
	}

	if after.Status != models.CompletionApproved {
		return after, nil
	}
	if r.awardOnce && before.Status == models.CompletionApproved {
		return after, nil
	}

	challenge, err := r.challenges.GetByID(ctx, after.ChallengeID)
	if errors.Is(err, ErrNotFound) {
		return after, nil
	}
	if err != nil {
		return after, fmt.Errorf("award xp for completion %s: %w", after.ID, err)
	}

	user, err := r.users.AddXP(ctx, after.UserID, challenge.XPValue)
	if errors.Is(err, ErrNotFound) {
		return after, nil
	}
	if err != nil {
		return after, fmt.Errorf("award xp for completion %s: %w", after.ID, err)
	}

	if r.onAward != nil {
		r.onAward(*user, *after, challenge.XPValue)
	}
	return after, nil
}

// AwardsXPOnce reports whether re-approving an approved completion is a no-op for XP.
func (r *CompletionRepository) AwardsXPOnce() bool {
	return r.awardOnce
}
