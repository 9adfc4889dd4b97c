package models

import (
	"time"

	"github.com/lib/pq"
)

// OfferStatus represents the lifecycle status of a ride offer
type OfferStatus string

const (
	OfferStatusAvailable  OfferStatus = "AVAILABLE"
	OfferStatusReserved   OfferStatus = "RESERVED"
	OfferStatusInProgress OfferStatus = "IN_PROGRESS"
	OfferStatusDone       OfferStatus = "DONE"
	OfferStatusCancelled  OfferStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is possible
func (s OfferStatus) IsTerminal() bool {
	return s == OfferStatusDone || s == OfferStatusCancelled
}

// DistanceAvailability is how far a driver is willing to go
type DistanceAvailability string

const (
	DistanceLocal  DistanceAvailability = "LOCAL"
	DistanceUpTo1H DistanceAvailability = "UP_TO_1H"
	DistanceAny    DistanceAvailability = "ANY"
)

// Valid reports whether d is part of the enum
func (d DistanceAvailability) Valid() bool {
	switch d {
	case DistanceLocal, DistanceUpTo1H, DistanceAny:
		return true
	}
	return false
}

// Vehicle types
const (
	VehicleCar   = "car"
	VehicleVan   = "van"
	VehicleSUV   = "suv"
	VehicleTruck = "truck"
)

// VehicleTypes is the accepted vehicle_type vocabulary
var VehicleTypes = []string{VehicleCar, VehicleVan, VehicleSUV, VehicleTruck}

// Equipment vocabulary
const (
	EquipmentTrailer     = "trailer"
	EquipmentToolsSpace  = "tools_space"
	EquipmentLargeCargo  = "large_cargo"
	EquipmentPetFriendly = "pet_friendly"
)

// Equipment is the accepted equipment vocabulary
var Equipment = []string{EquipmentTrailer, EquipmentToolsSpace, EquipmentLargeCargo, EquipmentPetFriendly}

// RideOffer is a driver's declared availability
type RideOffer struct {
	ID                string               `json:"id" db:"id"`
	DriverName        string               `json:"driver_name" db:"driver_name"`
	DriverPhone       string               `json:"driver_phone" db:"driver_phone"`
	VehicleType       string               `json:"vehicle_type" db:"vehicle_type"`
	SeatsAvailable    int                  `json:"seats_available" db:"seats_available"`
	DepartureAreaText string               `json:"departure_area_text" db:"departure_area_text"`
	CanGoDistance     DistanceAvailability `json:"can_go_distance" db:"can_go_distance"`
	TimeWindowStart   time.Time            `json:"time_window_start" db:"time_window_start"`
	TimeWindowEnd     time.Time            `json:"time_window_end" db:"time_window_end"`
	Equipment         pq.StringArray       `json:"equipment" db:"equipment"`
	Notes             string               `json:"notes" db:"notes"`
	Status            OfferStatus          `json:"status" db:"status"`
	EditToken         string               `json:"-" db:"edit_token"`
	CreatedAt         time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at" db:"updated_at"`
}

// Clone returns a deep copy of the offer
func (o *RideOffer) Clone() *RideOffer {
	if o == nil {
		return nil
	}
	c := *o
	if o.Equipment != nil {
		c.Equipment = append(pq.StringArray{}, o.Equipment...)
	}
	return &c
}

// RideOfferInput is the self-service payload for creating or editing an offer
type RideOfferInput struct {
	DriverName        string               `json:"driver_name"`
	DriverPhone       string               `json:"driver_phone"`
	VehicleType       string               `json:"vehicle_type"`
	SeatsAvailable    int                  `json:"seats_available"`
	DepartureAreaText string               `json:"departure_area_text"`
	CanGoDistance     DistanceAvailability `json:"can_go_distance"`
	TimeWindowStart   time.Time            `json:"time_window_start"`
	TimeWindowEnd     time.Time            `json:"time_window_end"`
	Equipment         []string             `json:"equipment"`
	Notes             string               `json:"notes"`
	Honeypot          string               `json:"honeypot"`
	AcceptTerms       bool                 `json:"accept_terms"`
}

// RideOfferCreated is returned once to the driver, carrying the edit token
type RideOfferCreated struct {
	Offer     *RideOffer `json:"offer"`
	EditToken string     `json:"edit_token"`
}

// PublicRideOffer is the masked view shown on public listings
type PublicRideOffer struct {
	ID                string               `json:"id"`
	DriverName        string               `json:"driver_name"`
	DriverPhone       string               `json:"driver_phone"`
	VehicleType       string               `json:"vehicle_type"`
	SeatsAvailable    int                  `json:"seats_available"`
	DepartureAreaText string               `json:"departure_area_text"`
	CanGoDistance     DistanceAvailability `json:"can_go_distance"`
	TimeWindowStart   time.Time            `json:"time_window_start"`
	TimeWindowEnd     time.Time            `json:"time_window_end"`
	Equipment         []string             `json:"equipment"`
	Status            OfferStatus          `json:"status"`
	CreatedAt         time.Time            `json:"created_at"`
}
