// workers/gauge_worker.go
package workers

import (
	"context"

	"oneearth/metrics"
	"oneearth/models"
	"oneearth/repository"
)

// RefreshGauges recomputes the user and pending-completion gauges from the stored collections.
func RefreshGauges(ctx context.Context, repos *repository.Repositories) error {
	users, err := repos.Users.List(ctx)
	if err != nil {
		return err
	}
	counts := map[models.Role]int{models.RoleUser: 0, models.RoleHost: 0}
	for _, u := range users {
		counts[u.Role]++
	}
	for role, n := range counts {
		metrics.Users.WithLabelValues(string(role)).Set(float64(n))
	}

	completions, err := repos.Completions.List(ctx)
	if err != nil {
		return err
	}
	pending := 0
	for _, c := range completions {
		if c.Status == models.CompletionPending {
			pending++
		}
	}
	metrics.PendingCompletions.Set(float64(pending))
	return nil
}
