package models

import "time"

// Challenge is a sustainability task posted by a host.
// HostName is a denormalized copy taken at creation and never refreshed.
type Challenge struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug,omitempty"`
	Description string    `json:"description"`
	XPValue     int       `json:"xpValue"`
	HostID      string    `json:"hostId"`
	HostName    string    `json:"hostName"`
	EndDate     time.Time `json:"endDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Ended reports whether the challenge's end date is before now.
func (c *Challenge) Ended(now time.Time) bool {
	return c.EndDate.Before(now)
}
