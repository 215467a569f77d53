package services

import (
	"context"
	"testing"
	"time"

	"oneearth/models"
	"oneearth/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChallengeService_CreateChallenge(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t, repository.Options{})
	host := e.register(t, "host", models.RoleHost)
	user := e.register(t, "ana", models.RoleUser)

	c, err := e.challenges.CreateChallenge(ctx, host, CreateChallengeInput{
		Title:       "Meatless Monday",
		Description: "No meat for a day",
		XPValue:     20,
		EndDate:     testNow.Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, host.ID, c.HostID)
	assert.Equal(t, "host", c.HostName)
	assert.Equal(t, "meatless-monday", c.Slug)

	_, err = e.challenges.CreateChallenge(ctx, user, CreateChallengeInput{Title: "x", Description: "y", XPValue: 1, EndDate: testNow})
	assert.ErrorIs(t, err, ErrHostOnly)

	_, err = e.challenges.CreateChallenge(ctx, host, CreateChallengeInput{Title: "x", Description: "y", XPValue: 0, EndDate: testNow})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.challenges.CreateChallenge(ctx, host, CreateChallengeInput{Title: "x", Description: "y", XPValue: 5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestChallengeService_JoinChallenge(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t, repository.Options{})
	host := e.register(t, "host", models.RoleHost)
	user := e.register(t, "ana", models.RoleUser)
	c := e.challenge(t, host, 10)

	first, created, err := e.challenges.JoinChallenge(ctx, user, c.ID)
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := e.challenges.JoinChallenge(ctx, user, c.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	_, _, err = e.challenges.JoinChallenge(ctx, user, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, _, err = e.challenges.JoinChallenge(ctx, nil, c.ID)
	assert.ErrorIs(t, err, ErrNoSession)

	e.challenges.Now = func() time.Time { return testNow.Add(72 * time.Hour) }
	other := e.register(t, "bob", models.RoleUser)
	_, _, err = e.challenges.JoinChallenge(ctx, other, c.ID)
	assert.ErrorIs(t, err, ErrChallengeEnded)
}

func TestChallengeService_ReviewCompletion(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t, repository.Options{})
	host := e.register(t, "host", models.RoleHost)
	otherHost := e.register(t, "rival", models.RoleHost)
	user := e.register(t, "ana", models.RoleUser)
	c := e.challenge(t, host, 10)

	comp, _, err := e.challenges.JoinChallenge(ctx, user, c.ID)
	require.NoError(t, err)

	_, err = e.challenges.ReviewCompletion(ctx, user, comp.ID, true)
	assert.ErrorIs(t, err, ErrHostOnly)

	_, err = e.challenges.ReviewCompletion(ctx, otherHost, comp.ID, true)
	assert.ErrorIs(t, err, ErrNotChallengeHost)

	_, err = e.challenges.ReviewCompletion(ctx, host, "missing", true)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	rejected, err := e.challenges.ReviewCompletion(ctx, host, comp.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.CompletionRejected, rejected.Status)

	_, err = e.challenges.ReviewCompletion(ctx, host, comp.ID, true)
	assert.ErrorIs(t, err, ErrCompletionNotPending)

	stored, err := e.repos.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.XP)
}

// A user with 0 XP joins a 50 XP challenge and the host approves the completion twice.
func TestScenario_ApprovalAwardsXPPerCall(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t, repository.Options{})
	host := e.register(t, "host", models.RoleHost)
	user := e.register(t, "a", models.RoleUser)
	c := e.challenge(t, host, 50)

	_, _, err := e.challenges.JoinChallenge(ctx, user, c.ID)
	require.NoError(t, err)

	pending, err := e.progression.PendingApprovalsForHost(ctx, host.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, user.ID, pending[0].User.ID)
	assert.Equal(t, c.ID, pending[0].Challenge.ID)

	approved, err := e.challenges.ReviewCompletion(ctx, host, pending[0].ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.CompletionApproved, approved.Status)

	stored, err := e.repos.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, stored.XP)

	again, err := e.challenges.ReviewCompletion(ctx, host, approved.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.CompletionApproved, again.Status)
	stored, err = e.repos.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.XP)

	// an approved completion cannot be rejected
	_, err = e.challenges.ReviewCompletion(ctx, host, approved.ID, false)
	assert.ErrorIs(t, err, ErrCompletionNotPending)

	pending, err = e.progression.PendingApprovalsForHost(ctx, host.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestScenario_AwardOnce(t *testing.T) {
	ctx := context.Background()
	e := setupEnv(t, repository.Options{AwardXPOnce: true})
	host := e.register(t, "host", models.RoleHost)
	user := e.register(t, "a", models.RoleUser)
	c := e.challenge(t, host, 50)

	comp, _, err := e.challenges.JoinChallenge(ctx, user, c.ID)
	require.NoError(t, err)
	_, err = e.challenges.ReviewCompletion(ctx, host, comp.ID, true)
	require.NoError(t, err)

	_, err = e.challenges.ReviewCompletion(ctx, host, comp.ID, true)
	assert.ErrorIs(t, err, ErrCompletionNotPending)

	stored, err := e.repos.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, stored.XP)
}
