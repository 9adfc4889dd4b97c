package models

import "time"

// RequestFilter narrows request listings
type RequestFilter struct {
	Status        RequestStatus
	Search        string
	GeohashPrefix string
	// Near widens GeohashPrefix to its eight neighbouring cells
	Near bool
}

// OfferFilter narrows offer listings
type OfferFilter struct {
	Status OfferStatus
	Search string
}

// AvailableOfferFilter narrows the candidate pool for compatibility search.
// Zero values disable the corresponding condition.
type AvailableOfferFilter struct {
	MinSeats    int
	WindowStart time.Time
	WindowEnd   time.Time
	Limit       int
}

// MatchFilter narrows match listings
type MatchFilter struct {
	Status    MatchStatus
	RequestID string
	OfferID   string
}

// StatusUpdateRequest is the coordinator payload for a direct request/offer status change
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
