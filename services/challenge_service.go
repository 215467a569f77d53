package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oneearth/logger"
	"oneearth/metrics"
	"oneearth/models"
	"oneearth/repository"
	"oneearth/utils"

	"github.com/sirupsen/logrus"
)

var (
	ErrHostOnly             = errors.New("only hosts can do this")
	ErrInvalidInput         = errors.New("invalid input")
	ErrChallengeEnded       = errors.New("challenge has ended")
	ErrNotChallengeHost     = errors.New("completion belongs to another host's challenge")
	ErrCompletionNotPending = errors.New("completion has already been reviewed")
)

type CreateChallengeInput struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	XPValue     int       `json:"xpValue" validate:"gt=0"`
	EndDate     time.Time `json:"endDate" validate:"required"`
}

type ChallengeService struct {
	Challenges  *repository.ChallengeRepository
	Completions *repository.CompletionRepository
	Now         func() time.Time
	log         *logrus.Entry
}

func NewChallengeService(repos *repository.Repositories, l *logger.Logger) *ChallengeService {
	return &ChallengeService{
		Challenges:  repos.Challenges,
		Completions: repos.Completions,
		Now:         time.Now,
		log:         l.Component("challenges"),
	}
}

func (s *ChallengeService) ListChallenges(ctx context.Context) ([]models.Challenge, error) {
	return s.Challenges.List(ctx)
}

// CreateChallenge posts a challenge owned by host.
func (s *ChallengeService) CreateChallenge(ctx context.Context, host *models.User, in CreateChallengeInput) (*models.Challenge, error) {
	if host == nil || !host.IsHost() {
		return nil, ErrHostOnly
	}
	if err := utils.ValidateStruct(in); err != nil {
		return nil, invalidFields(ErrInvalidInput, err)
	}

	c, err := s.Challenges.Create(ctx, models.Challenge{
		Title:       in.Title,
		Description: in.Description,
		XPValue:     in.XPValue,
		HostID:      host.ID,
		HostName:    host.Username,
		EndDate:     in.EndDate,
	})
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"challenge_id": c.ID, "host_id": host.ID}).Info("🌱 challenge created")
	return c, nil
}

// JoinChallenge records a pending completion for user. Joining twice returns the existing
// completion with created=false.
func (s *ChallengeService) JoinChallenge(ctx context.Context, user *models.User, challengeID string) (*models.ChallengeCompletion, bool, error) {
	if user == nil {
		return nil, false, ErrNoSession
	}
	challenge, err := s.Challenges.GetByID(ctx, challengeID)
	if err != nil {
		return nil, false, err
	}
	if challenge.Ended(s.Now()) {
		return nil, false, ErrChallengeEnded
	}

	comp, created, err := s.Completions.Create(ctx, user.ID, challenge.ID)
	if err != nil {
		return nil, false, err
	}
	if created {
		metrics.CompletionsSubmitted.Inc()
		s.log.WithFields(logrus.Fields{"challenge_id": challenge.ID, "user_id": user.ID}).Info("📝 completion submitted")
	}
	return comp, created, nil
}

// ReviewCompletion approves or rejects a completion on one of host's challenges. Pending
// completions can go either way. An approved one can be approved again, awarding its XP again,
// unless the repository awards XP once.
func (s *ChallengeService) ReviewCompletion(ctx context.Context, host *models.User, completionID string, approve bool) (*models.ChallengeCompletion, error) {
	if host == nil || !host.IsHost() {
		return nil, ErrHostOnly
	}
	comp, err := s.Completions.GetByID(ctx, completionID)
	if err != nil {
		return nil, err
	}
	challenge, err := s.Challenges.GetByID(ctx, comp.ChallengeID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: challenge %s", ErrDanglingReference, comp.ChallengeID)
	}
	if err != nil {
		return nil, err
	}
	if challenge.HostID != host.ID {
		return nil, ErrNotChallengeHost
	}
	if !s.reviewable(comp, approve) {
		return nil, ErrCompletionNotPending
	}

	comp.Status = models.CompletionRejected
	if approve {
		comp.Status = models.CompletionApproved
	}
	updated, err := s.Completions.Update(ctx, *comp)
	if err != nil {
		return nil, err
	}
	metrics.CompletionsReviewed.WithLabelValues(string(updated.Status)).Inc()
	s.log.WithFields(logrus.Fields{"completion_id": updated.ID, "status": updated.Status}).Info("✅ completion reviewed")
	return updated, nil
}

func (s *ChallengeService) reviewable(comp *models.ChallengeCompletion, approve bool) bool {
	switch comp.Status {
	case models.CompletionPending:
		return true
	case models.CompletionApproved:
		return approve && !s.Completions.AwardsXPOnce()
	}
	return false
}
