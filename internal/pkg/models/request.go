package models

import (
	"time"

	"github.com/lib/pq"
)

// RequestStatus represents the lifecycle status of a ride request
type RequestStatus string

const (
	RequestStatusNew        RequestStatus = "NEW"
	RequestStatusTriage     RequestStatus = "TRIAGE"
	RequestStatusConfirmed  RequestStatus = "CONFIRMED"
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	RequestStatusDone       RequestStatus = "DONE"
	RequestStatusCancelled  RequestStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is possible
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusDone || s == RequestStatusCancelled
}

// IsPreMatch reports whether the request can still receive a proposal
func (s RequestStatus) IsPreMatch() bool {
	return s == RequestStatusNew || s == RequestStatusTriage
}

// Special needs vocabulary
const (
	NeedElderly         = "elderly"
	NeedReducedMobility = "reduced_mobility"
	NeedChildren        = "children"
	NeedWheelchair      = "wheelchair"
)

// SpecialNeeds is the fixed vocabulary accepted in RideRequest.SpecialNeeds
var SpecialNeeds = []string{NeedElderly, NeedReducedMobility, NeedChildren, NeedWheelchair}

// RideRequest is a passenger's need for transportation
type RideRequest struct {
	ID                  string         `json:"id" db:"id"`
	RequesterName       string         `json:"requester_name" db:"requester_name"`
	RequesterPhone      string         `json:"requester_phone" db:"requester_phone"`
	PickupLocationText  string         `json:"pickup_location_text" db:"pickup_location_text"`
	DropoffLocationText string         `json:"dropoff_location_text" db:"dropoff_location_text"`
	PickupLat           *float64       `json:"pickup_lat,omitempty" db:"pickup_lat"`
	PickupLng           *float64       `json:"pickup_lng,omitempty" db:"pickup_lng"`
	DropoffLat          *float64       `json:"dropoff_lat,omitempty" db:"dropoff_lat"`
	DropoffLng          *float64       `json:"dropoff_lng,omitempty" db:"dropoff_lng"`
	PickupGeohash       string         `json:"pickup_geohash,omitempty" db:"pickup_geohash"`
	WindowStart         time.Time      `json:"window_start" db:"window_start"`
	WindowEnd           time.Time      `json:"window_end" db:"window_end"`
	Passengers          int            `json:"passengers" db:"passengers"`
	SpecialNeeds        pq.StringArray `json:"special_needs" db:"special_needs"`
	Notes               string         `json:"notes" db:"notes"`
	Status              RequestStatus  `json:"status" db:"status"`
	MatchedOfferID      *string        `json:"matched_offer_id" db:"matched_offer_id"`
	EditToken           string         `json:"-" db:"edit_token"`
	CreatedAt           time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at" db:"updated_at"`
}

// Clone returns a deep copy of the request
func (r *RideRequest) Clone() *RideRequest {
	if r == nil {
		return nil
	}
	c := *r
	c.PickupLat = cloneFloat(r.PickupLat)
	c.PickupLng = cloneFloat(r.PickupLng)
	c.DropoffLat = cloneFloat(r.DropoffLat)
	c.DropoffLng = cloneFloat(r.DropoffLng)
	if r.MatchedOfferID != nil {
		id := *r.MatchedOfferID
		c.MatchedOfferID = &id
	}
	if r.SpecialNeeds != nil {
		c.SpecialNeeds = append(pq.StringArray{}, r.SpecialNeeds...)
	}
	return &c
}

// RideRequestInput is the self-service payload for creating or editing a request
type RideRequestInput struct {
	RequesterName       string    `json:"requester_name"`
	RequesterPhone      string    `json:"requester_phone"`
	PickupLocationText  string    `json:"pickup_location_text"`
	DropoffLocationText string    `json:"dropoff_location_text"`
	PickupLat           *float64  `json:"pickup_lat,omitempty"`
	PickupLng           *float64  `json:"pickup_lng,omitempty"`
	DropoffLat          *float64  `json:"dropoff_lat,omitempty"`
	DropoffLng          *float64  `json:"dropoff_lng,omitempty"`
	WindowStart         time.Time `json:"window_start"`
	WindowEnd           time.Time `json:"window_end"`
	Passengers          int       `json:"passengers"`
	SpecialNeeds        []string  `json:"special_needs"`
	Notes               string    `json:"notes"`
	Honeypot            string    `json:"honeypot"`
	AcceptTerms         bool      `json:"accept_terms"`
}

// RideRequestCreated is returned once to the submitter, carrying the edit token
type RideRequestCreated struct {
	Request   *RideRequest `json:"request"`
	EditToken string       `json:"edit_token"`
}

// PublicRideRequest is the masked view shown on public listings
type PublicRideRequest struct {
	ID                  string        `json:"id"`
	RequesterName       string        `json:"requester_name"`
	RequesterPhone      string        `json:"requester_phone"`
	PickupLocationText  string        `json:"pickup_location_text"`
	DropoffLocationText string        `json:"dropoff_location_text"`
	WindowStart         time.Time     `json:"window_start"`
	WindowEnd           time.Time     `json:"window_end"`
	Passengers          int           `json:"passengers"`
	SpecialNeeds        []string      `json:"special_needs"`
	Status              RequestStatus `json:"status"`
	CreatedAt           time.Time     `json:"created_at"`
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
