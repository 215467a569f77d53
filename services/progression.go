package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"oneearth/models"
	"oneearth/repository"
)

// ErrDanglingReference means a pending completion points at a user or challenge that is gone.
var ErrDanglingReference = errors.New("completion references a missing record")

// MilestoneStep is the XP distance between profile milestones.
const MilestoneStep = 100

type ProgressionService struct {
	Users       *repository.UserRepository
	Challenges  *repository.ChallengeRepository
	Completions *repository.CompletionRepository
}

func NewProgressionService(repos *repository.Repositories) *ProgressionService {
	return &ProgressionService{
		Users:       repos.Users,
		Challenges:  repos.Challenges,
		Completions: repos.Completions,
	}
}

// Leaderboard lists participants (hosts excluded) by XP, highest first.
func (s *ProgressionService) Leaderboard(ctx context.Context) ([]models.User, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	board := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role == models.RoleUser {
			board = append(board, u)
		}
	}
	sort.SliceStable(board, func(i, j int) bool { return board[i].XP > board[j].XP })
	return board, nil
}

// PendingApprovalsForHost joins every pending completion of the host's challenges with its
// challenge and user.
func (s *ProgressionService) PendingApprovalsForHost(ctx context.Context, hostID string) ([]models.PendingApproval, error) {
	challenges, err := s.Challenges.ListByHostID(ctx, hostID)
	if err != nil {
		return nil, err
	}
	return s.pendingFor(ctx, challenges)
}

func (s *ProgressionService) pendingFor(ctx context.Context, challenges []models.Challenge) ([]models.PendingApproval, error) {
	byID := make(map[string]models.Challenge, len(challenges))
	for _, c := range challenges {
		byID[c.ID] = c
	}

	completions, err := s.Completions.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[string]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	out := make([]models.PendingApproval, 0)
	for _, comp := range completions {
		if comp.Status != models.CompletionPending {
			continue
		}
		challenge, ok := byID[comp.ChallengeID]
		if !ok {
			continue
		}
		user, ok := usersByID[comp.UserID]
		if !ok {
			return nil, fmt.Errorf("%w: completion %s has unknown user %s", ErrDanglingReference, comp.ID, comp.UserID)
		}
		out = append(out, models.PendingApproval{ChallengeCompletion: comp, Challenge: challenge, User: user})
	}
	return out, nil
}

// Profile summarises a user's completions and milestone progress.
func (s *ProgressionService) Profile(ctx context.Context, userID string) (*models.ProfileStats, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	completions, err := s.Completions.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	challenges, err := s.Challenges.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Challenge, len(challenges))
	for _, c := range challenges {
		byID[c.ID] = c
	}

	stats := &models.ProfileStats{
		User:        *user,
		Completions: make([]models.CompletionWithChallenge, 0, len(completions)),
	}
	for _, comp := range completions {
		entry := models.CompletionWithChallenge{ChallengeCompletion: comp}
		if c, ok := byID[comp.ChallengeID]; ok {
			entry.Challenge = &c
		}
		stats.Completions = append(stats.Completions, entry)

		switch comp.Status {
		case models.CompletionApproved:
			stats.Approved++
		case models.CompletionPending:
			stats.Pending++
		case models.CompletionRejected:
			stats.Rejected++
		}
	}

	stats.NextMilestone, stats.MilestonePct = milestone(user.XP)
	stats.XPToMilestone = stats.NextMilestone - user.XP
	return stats, nil
}

// milestone rounds xp up to the next multiple of MilestoneStep and reports the percentage
// reached within the current step. A multiple of the step is its own milestone.
func milestone(xp int) (next, pct int) {
	if xp <= 0 {
		return 0, 0
	}
	next = (xp + MilestoneStep - 1) / MilestoneStep * MilestoneStep
	pct = xp % MilestoneStep * 100 / MilestoneStep
	return next, pct
}

// HostDashboard lists the host's challenges with the completions waiting on them.
func (s *ProgressionService) HostDashboard(ctx context.Context, hostID string) (*models.HostDashboard, error) {
	challenges, err := s.Challenges.ListByHostID(ctx, hostID)
	if err != nil {
		return nil, err
	}
	pending, err := s.pendingFor(ctx, challenges)
	if err != nil {
		return nil, err
	}
	return &models.HostDashboard{Challenges: challenges, Pending: pending}, nil
}
