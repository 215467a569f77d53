package services

import (
	"context"
	"testing"

	"oneearth/models"
	"oneearth/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewardService_CreateReward(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t, repository.Options{})
	host := e.register(t, "host", models.RoleHost)
	user := e.register(t, "ana", models.RoleUser)

	rw, err := e.rewards.CreateReward(ctx, host, CreateRewardInput{Title: "Mug", Description: "ceramic", XPCost: 40})
	require.NoError(t, err)
	assert.True(t, rw.Available)
	assert.Equal(t, host.ID, rw.HostID)

	off := false
	hidden, err := e.rewards.CreateReward(ctx, host, CreateRewardInput{Title: "Hat", Description: "wool", XPCost: 40, Available: &off})
	require.NoError(t, err)
	assert.False(t, hidden.Available)

	_, err = e.rewards.CreateReward(ctx, user, CreateRewardInput{Title: "x", Description: "y", XPCost: 1})
	assert.ErrorIs(t, err, ErrHostOnly)

	_, err = e.rewards.CreateReward(ctx, host, CreateRewardInput{Title: "x", XPCost: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	all, err := e.rewards.ListRewards(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRewardService_ClaimReward(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t, repository.Options{})
	host := e.register(t, "host", models.RoleHost)
	user := e.register(t, "ana", models.RoleUser)

	cheap, err := e.rewards.CreateReward(ctx, host, CreateRewardInput{Title: "Pin", Description: "enamel", XPCost: 30})
	require.NoError(t, err)
	pricey, err := e.rewards.CreateReward(ctx, host, CreateRewardInput{Title: "Bike", Description: "used", XPCost: 500})
	require.NoError(t, err)
	off := false
	gone, err := e.rewards.CreateReward(ctx, host, CreateRewardInput{Title: "Gone", Description: "sold out", XPCost: 1, Available: &off})
	require.NoError(t, err)

	_, err = e.repos.Users.AddXP(ctx, user.ID, 100)
	require.NoError(t, err)

	// the session copy of user still says 0 XP; the stored record wins
	res, err := e.rewards.ClaimReward(ctx, user, cheap.ID)
	require.NoError(t, err)
	assert.True(t, res.Simulated)
	assert.Equal(t, 100, res.XPAvailable)

	_, err = e.rewards.ClaimReward(ctx, user, pricey.ID)
	assert.ErrorIs(t, err, ErrInsufficientXP)
	assert.Contains(t, err.Error(), "need 400 more")

	_, err = e.rewards.ClaimReward(ctx, user, gone.ID)
	assert.ErrorIs(t, err, ErrRewardUnavailable)

	_, err = e.rewards.ClaimReward(ctx, user, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = e.rewards.ClaimReward(ctx, nil, cheap.ID)
	assert.ErrorIs(t, err, ErrNoSession)

	stored, err := e.repos.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.XP, "claims do not spend XP")
}
