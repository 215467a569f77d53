package models

// PendingApproval is a pending completion joined with what a host needs to review it.
type PendingApproval struct {
	ChallengeCompletion
	Challenge Challenge `json:"challenge"`
	User      User      `json:"user"`
}

// CompletionWithChallenge is a completion as shown on a user's profile.
// Challenge is nil when the referenced challenge no longer exists.
type CompletionWithChallenge struct {
	ChallengeCompletion
	Challenge *Challenge `json:"challenge,omitempty"`
}

// ProfileStats summarises a user's progress.
type ProfileStats struct {
	User          User                      `json:"user"`
	Completions   []CompletionWithChallenge `json:"completions"`
	Approved      int                       `json:"approved"`
	Pending       int                       `json:"pending"`
	Rejected      int                       `json:"rejected"`
	NextMilestone int                       `json:"nextMilestone"`
	XPToMilestone int                       `json:"xpToMilestone"`
	MilestonePct  int                       `json:"milestoneProgress"`
}

// HostDashboard is what a host sees: their challenges and the completions awaiting review.
type HostDashboard struct {
	Challenges []Challenge       `json:"challenges"`
	Pending    []PendingApproval `json:"pending"`
}

// ClaimResult reports a simulated reward claim.
type ClaimResult struct {
	RewardID    string `json:"rewardId"`
	UserID      string `json:"userId"`
	XPCost      int    `json:"xpCost"`
	XPAvailable int    `json:"xpAvailable"`
	Simulated   bool   `json:"simulated"`
}
