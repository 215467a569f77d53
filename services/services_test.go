package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"oneearth/logger"
	"oneearth/models"
	"oneearth/repository"
	"oneearth/store"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 4, 22, 9, 0, 0, 0, time.UTC)

type env struct {
	store       *store.MemoryStore
	repos       *repository.Repositories
	auth        *AuthService
	challenges  *ChallengeService
	rewards     *RewardService
	progression *ProgressionService
}

func setupEnv(t *testing.T, opts repository.Options) *env {
	t.Helper()
	n := 0
	opts.Keys = store.KeysFor("test")
	opts.NewID = func() string { n++; return fmt.Sprintf("id-%d", n) }
	opts.Now = func() time.Time { return testNow }

	s := store.NewMemoryStore()
	repos := repository.New(s, opts)
	log := logger.Discard()

	e := &env{
		store:       s,
		repos:       repos,
		auth:        NewAuthService(repos.Users, s, opts.Keys.Session, log),
		challenges:  NewChallengeService(repos, log),
		rewards:     NewRewardService(repos, log),
		progression: NewProgressionService(repos),
	}
	e.challenges.Now = func() time.Time { return testNow }
	return e
}

func (e *env) register(t *testing.T, name string, role models.Role) *models.User {
	t.Helper()
	u, err := e.auth.Register(context.Background(), RegisterInput{
		Username: name,
		Email:    name + "@x.com",
		Password: "pw",
		Role:     role,
	})
	require.NoError(t, err)
	return u
}

func (e *env) challenge(t *testing.T, host *models.User, xp int) *models.Challenge {
	t.Helper()
	c, err := e.challenges.CreateChallenge(context.Background(), host, CreateChallengeInput{
		Title:       "Challenge " + host.Username,
		Description: "do it",
		XPValue:     xp,
		EndDate:     testNow.Add(24 * time.Hour),
	})
	require.NoError(t, err)
	return c
}
