package models

import "time"

// Recipe is a single entry in a user's recipe history. Entries are only
// appended or deleted, never updated in place.
type Recipe struct {
	ID          string    `json:"id"`
	Ingredients string    `json:"ingredients"`
	Recipe      string    `json:"recipe"`
	CreatedAt   time.Time `json:"createdAt"`
}
