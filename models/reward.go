package models

import "time"

// Reward is something a host offers in exchange for XP.
// Claims are simulated and never recorded.
type Reward struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	HostID      string    `json:"hostId"`
	HostName    string    `json:"hostName"`
	XPCost      int       `json:"xpCost"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
}
