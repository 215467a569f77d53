package store

import (
	"fmt"
	"time"

	"oneearth/models"

	"github.com/google/uuid"
)

const day = 24 * time.Hour

// SeedID returns the fixed id of the n-th sample record of a collection.
// The same inputs always give the same UUID so seeded records can reference each other.
func SeedID(collection string, n int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("oneearth/%s/%d", collection, n))).String()
}

// SampleData builds the records written to empty slots on first access.
type SampleData struct {
	Now func() time.Time
}

func (s SampleData) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}

func (s SampleData) Users() []models.User {
	now := s.now()
	return []models.User{
		{ID: SeedID("users", 1), Username: "user1", Email: "user1@example.com", Password: "password", Role: models.RoleUser, XP: 150, CreatedAt: now},
		{ID: SeedID("users", 2), Username: "user2", Email: "user2@example.com", Password: "password", Role: models.RoleUser, XP: 300, CreatedAt: now},
		{ID: SeedID("users", 3), Username: "ecohost", Email: "host@example.com", Password: "password", Role: models.RoleHost, XP: 0, CreatedAt: now},
	}
}

func (s SampleData) Challenges() []models.Challenge {
	now := s.now()
	host := SeedID("users", 3)
	return []models.Challenge{
		{
			ID:          SeedID("challenges", 1),
			Title:       "Plastic-Free Week",
			Slug:        "plastic-free-week",
			Description: "Go without single-use plastics for a full week. Document your journey.",
			XPValue:     50,
			HostID:      host,
			HostName:    "ecohost",
			EndDate:     now.Add(7 * day),
			CreatedAt:   now,
		},
		{
			ID:          SeedID("challenges", 2),
			Title:       "Public Transit Champion",
			Slug:        "public-transit-champion",
			Description: "Use only public transportation for 5 days. Share your experience.",
			XPValue:     75,
			HostID:      host,
			HostName:    "ecohost",
			EndDate:     now.Add(10 * day),
			CreatedAt:   now,
		},
		{
			ID:          SeedID("challenges", 3),
			Title:       "Zero Food Waste",
			Slug:        "zero-food-waste",
			Description: "Track and eliminate all food waste for 3 days. Show your meal planning.",
			XPValue:     40,
			HostID:      host,
			HostName:    "ecohost",
			EndDate:     now.Add(5 * day),
			CreatedAt:   now,
		},
	}
}

func (s SampleData) Completions() []models.ChallengeCompletion {
	now := s.now()
	return []models.ChallengeCompletion{
		{
			ID:          SeedID("completions", 1),
			UserID:      SeedID("users", 1),
			ChallengeID: SeedID("challenges", 1),
			Status:      models.CompletionApproved,
			SubmittedAt: now.Add(-2 * day),
			UpdatedAt:   now.Add(-day),
		},
		{
			ID:          SeedID("completions", 2),
			UserID:      SeedID("users", 2),
			ChallengeID: SeedID("challenges", 1),
			Status:      models.CompletionApproved,
			SubmittedAt: now.Add(-3 * day),
			UpdatedAt:   now.Add(-2 * day),
		},
		{
			ID:          SeedID("completions", 3),
			UserID:      SeedID("users", 1),
			ChallengeID: SeedID("challenges", 2),
			Status:      models.CompletionPending,
			SubmittedAt: now,
			UpdatedAt:   now,
		},
	}
}

func (s SampleData) Rewards() []models.Reward {
	now := s.now()
	host := SeedID("users", 3)
	return []models.Reward{
		{ID: SeedID("rewards", 1), Title: "Reusable Water Bottle", Description: "High-quality stainless steel water bottle for your eco-friendly journey.", HostID: host, HostName: "ecohost", XPCost: 100, Available: true, CreatedAt: now},
		{ID: SeedID("rewards", 2), Title: "Tree Planting Certificate", Description: "We will plant a tree in your name with our partner organization.", HostID: host, HostName: "ecohost", XPCost: 200, Available: true, CreatedAt: now},
		{ID: SeedID("rewards", 3), Title: "Eco Store Discount Code", Description: "20% discount code for our partner eco-friendly store.", HostID: host, HostName: "ecohost", XPCost: 75, Available: true, CreatedAt: now},
	}
}
