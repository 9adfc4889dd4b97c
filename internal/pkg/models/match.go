package models

import "time"

// MatchStatus represents the current status of a match
type MatchStatus string

const (
	MatchStatusProposed   MatchStatus = "PROPOSED"
	MatchStatusConfirmed  MatchStatus = "CONFIRMED"
	MatchStatusInProgress MatchStatus = "IN_PROGRESS"
	MatchStatusDone       MatchStatus = "DONE"
	MatchStatusCancelled  MatchStatus = "CANCELLED"
)

// IsLive reports whether the match still holds its request and offer
func (s MatchStatus) IsLive() bool {
	return s != MatchStatusCancelled
}

// IsTerminal reports whether the match can no longer change
func (s MatchStatus) IsTerminal() bool {
	return s == MatchStatusDone || s == MatchStatusCancelled
}

// Match is a coordinator-proposed pairing of one request with one offer
type Match struct {
	ID               string      `json:"id" db:"id"`
	RequestID        string      `json:"request_id" db:"request_id"`
	OfferID          string      `json:"offer_id" db:"offer_id"`
	CoordinatorName  string      `json:"coordinator_name" db:"coordinator_name"`
	CoordinatorPhone string      `json:"coordinator_phone" db:"coordinator_phone"`
	Notes            string      `json:"notes" db:"notes"`
	Status           MatchStatus `json:"status" db:"status"`
	CreatedAt        time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at" db:"updated_at"`
}

// Clone returns a copy of the match
func (m *Match) Clone() *Match {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// MatchDetail is a match joined with its request and offer, as shown to coordinators
type MatchDetail struct {
	*Match
	Request *RideRequest `json:"ride_request,omitempty"`
	Offer   *RideOffer   `json:"ride_offer,omitempty"`
}

// ProposeMatchRequest is the coordinator payload for proposing a match
type ProposeMatchRequest struct {
	RequestID        string `json:"request_id"`
	OfferID          string `json:"offer_id"`
	CoordinatorName  string `json:"coordinator_name"`
	CoordinatorPhone string `json:"coordinator_phone"`
	Notes            string `json:"notes"`
}

// MatchTransitionRequest asks for a match to move to a target status
type MatchTransitionRequest struct {
	Status MatchStatus `json:"status"`
}

// MatchUpdate holds the fields written to a match inside a cascade.
// ExpectedStatus guards the write: it only applies if the stored status still matches.
type MatchUpdate struct {
	ExpectedStatus MatchStatus
	Status         MatchStatus
	UpdatedAt      time.Time
}

// RequestUpdate holds the fields written to a request inside a cascade
type RequestUpdate struct {
	ExpectedStatus RequestStatus
	Status         RequestStatus
	// SetMatchedOffer writes MatchedOfferID (nil clears it); when false the column is left alone
	SetMatchedOffer bool
	MatchedOfferID  *string
	UpdatedAt       time.Time
}

// OfferUpdate holds the fields written to an offer inside a cascade
type OfferUpdate struct {
	ExpectedStatus OfferStatus
	Status         OfferStatus
	UpdatedAt      time.Time
}
