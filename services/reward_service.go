// services/reward_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"oneearth/logger"
	"oneearth/models"
	"oneearth/repository"
	"oneearth/utils"

	"github.com/sirupsen/logrus"
)

var (
	ErrRewardUnavailable = errors.New("reward is not available")
	ErrInsufficientXP    = errors.New("not enough XP")
)

type CreateRewardInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	XPCost      int    `json:"xpCost" validate:"gt=0"`
	Available   *bool  `json:"available"`
}

type RewardService struct {
	Rewards *repository.RewardRepository
	Users   *repository.UserRepository
	log     *logrus.Entry
}

func NewRewardService(repos *repository.Repositories, l *logger.Logger) *RewardService {
	return &RewardService{Rewards: repos.Rewards, Users: repos.Users, log: l.Component("rewards")}
}

func (s *RewardService) ListRewards(ctx context.Context) ([]models.Reward, error) {
	return s.Rewards.List(ctx)
}

// CreateReward adds a reward offered by host. Rewards are available unless stated otherwise.
func (s *RewardService) CreateReward(ctx context.Context, host *models.User, in CreateRewardInput) (*models.Reward, error) {
	if host == nil || !host.IsHost() {
		return nil, ErrHostOnly
	}
	if err := utils.ValidateStruct(in); err != nil {
		return nil, invalidFields(ErrInvalidInput, err)
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}
	rw, err := s.Rewards.Create(ctx, models.Reward{
		Title:       in.Title,
		Description: in.Description,
		HostID:      host.ID,
		HostName:    host.Username,
		XPCost:      in.XPCost,
		Available:   available,
	})
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"reward_id": rw.ID, "host_id": host.ID}).Info("🎁 reward created")
	return rw, nil
}

// ClaimReward checks that user could afford the reward. Claims are simulated: neither the
// user's XP nor the reward changes.
func (s *RewardService) ClaimReward(ctx context.Context, user *models.User, rewardID string) (*models.ClaimResult, error) {
	if user == nil {
		return nil, ErrNoSession
	}
	rw, err := s.Rewards.GetByID(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if !rw.Available {
		return nil, ErrRewardUnavailable
	}

	// stored XP is authoritative; the session copy may be stale
	xp := user.XP
	if stored, err := s.Users.GetByID(ctx, user.ID); err == nil {
		xp = stored.XP
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if xp < rw.XPCost {
		return nil, fmt.Errorf("%w: need %d more", ErrInsufficientXP, rw.XPCost-xp)
	}

	s.log.WithFields(logrus.Fields{"reward_id": rw.ID, "user_id": user.ID}).Info("🎉 reward claimed (simulated)")
	return &models.ClaimResult{
		RewardID:    rw.ID,
		UserID:      user.ID,
		XPCost:      rw.XPCost,
		XPAvailable: xp,
		Simulated:   true,
	}, nil
}
