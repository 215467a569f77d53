// Package repository provides typed CRUD over the record store collections.
package repository

import (
	"time"

	"oneearth/models"
	"oneearth/store"
)

// Options configure the repositories.
type Options struct {
	Keys store.Keys

	// Sample seeds empty slots on first access. Nil leaves them empty.
	Sample *store.SampleData

	NewID store.IDFunc
	Now   func() time.Time

	// AwardXPOnce restricts the approval XP award to completions that were not already approved.
	// When false, every update that carries status=approved awards XP again.
	AwardXPOnce bool

	// OnXPAwarded, if set, is called after a completion approval added XP to a user.
	OnXPAwarded func(user models.User, completion models.ChallengeCompletion, xp int)
}

// Repositories groups the four entity repositories over one store.
type Repositories struct {
	Users       *UserRepository
	Challenges  *ChallengeRepository
	Completions *CompletionRepository
	Rewards     *RewardRepository
}

func New(s store.Store, opts Options) *Repositories {
	if opts.NewID == nil {
		opts.NewID = store.NewID
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}

	var (
		seedUsers       func() []models.User
		seedChallenges  func() []models.Challenge
		seedCompletions func() []models.ChallengeCompletion
		seedRewards     func() []models.Reward
	)
	if opts.Sample != nil {
		seedUsers = opts.Sample.Users
		seedChallenges = opts.Sample.Challenges
		seedCompletions = opts.Sample.Completions
		seedRewards = opts.Sample.Rewards
	}

	users := &UserRepository{
		t:     newTable(store.NewCollection(s, opts.Keys.Users, seedUsers), func(u *models.User) string { return u.ID }),
		newID: opts.NewID,
		now:   opts.Now,
	}
	challenges := &ChallengeRepository{
		t:     newTable(store.NewCollection(s, opts.Keys.Challenges, seedChallenges), func(c *models.Challenge) string { return c.ID }),
		newID: opts.NewID,
		now:   opts.Now,
	}
	completions := &CompletionRepository{
		t:          newTable(store.NewCollection(s, opts.Keys.Completions, seedCompletions), func(c *models.ChallengeCompletion) string { return c.ID }),
		newID:      opts.NewID,
		now:        opts.Now,
		users:      users,
		challenges: challenges,
		awardOnce:  opts.AwardXPOnce,
		onAward:    opts.OnXPAwarded,
	}
	rewards := &RewardRepository{
		t:     newTable(store.NewCollection(s, opts.Keys.Rewards, seedRewards), func(r *models.Reward) string { return r.ID }),
		newID: opts.NewID,
		now:   opts.Now,
	}

	return &Repositories{
		Users:       users,
		Challenges:  challenges,
		Completions: completions,
		Rewards:     rewards,
	}
}
