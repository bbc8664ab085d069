package types

import "time"

// RecentFormula pairs a formula with the time it was last viewed.
type RecentFormula struct {
	Formula  Formula   `json:"formula"`
	ViewedAt time.Time `json:"viewed_at"`
}

// SearchEntry is one logged search query.
type SearchEntry struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
}

// Preference is a small user setting stored as a string.
type Preference struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
