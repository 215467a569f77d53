package models

import "time"

// CompletionStatus is the review state of a ChallengeCompletion.
type CompletionStatus string

const (
	CompletionPending  CompletionStatus = "pending"
	CompletionApproved CompletionStatus = "approved"
	CompletionRejected CompletionStatus = "rejected"
)

// ChallengeCompletion joins a user to a challenge they claim to have finished.
// At most one exists per (UserID, ChallengeID).
type ChallengeCompletion struct {
	ID          string           `json:"id"`
	UserID      string           `json:"userId"`
	ChallengeID string           `json:"challengeId"`
	Status      CompletionStatus `json:"status"`
	SubmittedAt time.Time        `json:"submittedAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
