package usecase

import (
	"strings"
	"time"

	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/internal/utils"
)

// Field limits for self-service forms
const (
	nameMinLen     = 2
	nameMaxLen     = 100
	locationMinLen = 3
	locationMaxLen = 200
	notesMaxLen    = 500
	passengersMin  = 1
	passengersMax  = 20
	seatsMin       = 1
	seatsMax       = 50
)

// validateRequestInput checks and normalizes in place. Phones come out in +351 form.
func validateRequestInput(in *models.RideRequestInput, now time.Time, creating bool) error {
	if err := checkSubmission(in.Honeypot, in.AcceptTerms, creating); err != nil {
		return err
	}

	in.RequesterName = utils.SanitizeString(in.RequesterName)
	if err := checkLength("requester_name", in.RequesterName, nameMinLen, nameMaxLen); err != nil {
		return err
	}

	phone, err := checkPhone("requester_phone", in.RequesterPhone)
	if err != nil {
		return err
	}
	in.RequesterPhone = phone

	in.PickupLocationText = utils.SanitizeString(in.PickupLocationText)
	if err := checkLength("pickup_location_text", in.PickupLocationText, locationMinLen, locationMaxLen); err != nil {
		return err
	}
	in.DropoffLocationText = utils.SanitizeString(in.DropoffLocationText)
	if err := checkLength("dropoff_location_text", in.DropoffLocationText, locationMinLen, locationMaxLen); err != nil {
		return err
	}

	if err := checkCoordinates("pickup", in.PickupLat, in.PickupLng); err != nil {
		return err
	}
	if err := checkCoordinates("dropoff", in.DropoffLat, in.DropoffLng); err != nil {
		return err
	}

	if err := checkWindow("window_start", "window_end", in.WindowStart, in.WindowEnd, now, creating); err != nil {
		return err
	}

	if in.Passengers < passengersMin || in.Passengers > passengersMax {
		return apperrors.Validation("passengers", "must be between 1 and 20")
	}

	needs, err := checkVocabulary("special_needs", in.SpecialNeeds, models.SpecialNeeds)
	if err != nil {
		return err
	}
	in.SpecialNeeds = needs

	in.Notes = strings.TrimSpace(in.Notes)
	return checkNotes(in.Notes)
}

// validateOfferInput checks and normalizes in place
func validateOfferInput(in *models.RideOfferInput, now time.Time, creating bool) error {
	if err := checkSubmission(in.Honeypot, in.AcceptTerms, creating); err != nil {
		return err
	}

	in.DriverName = utils.SanitizeString(in.DriverName)
	if err := checkLength("driver_name", in.DriverName, nameMinLen, nameMaxLen); err != nil {
		return err
	}

	phone, err := checkPhone("driver_phone", in.DriverPhone)
	if err != nil {
		return err
	}
	in.DriverPhone = phone

	in.VehicleType = strings.ToLower(strings.TrimSpace(in.VehicleType))
	if !contains(models.VehicleTypes, in.VehicleType) {
		return apperrors.Validation("vehicle_type", "must be one of "+strings.Join(models.VehicleTypes, ", "))
	}

	if in.SeatsAvailable < seatsMin || in.SeatsAvailable > seatsMax {
		return apperrors.Validation("seats_available", "must be between 1 and 50")
	}

	in.DepartureAreaText = utils.SanitizeString(in.DepartureAreaText)
	if err := checkLength("departure_area_text", in.DepartureAreaText, locationMinLen, locationMaxLen); err != nil {
		return err
	}

	if !in.CanGoDistance.Valid() {
		return apperrors.Validation("can_go_distance", "must be one of LOCAL, UP_TO_1H, ANY")
	}

	if err := checkWindow("time_window_start", "time_window_end", in.TimeWindowStart, in.TimeWindowEnd, now, creating); err != nil {
		return err
	}

	equipment, err := checkVocabulary("equipment", in.Equipment, models.Equipment)
	if err != nil {
		return err
	}
	in.Equipment = equipment

	in.Notes = strings.TrimSpace(in.Notes)
	return checkNotes(in.Notes)
}

// checkSubmission rejects filled honeypots. Terms only need accepting on create.
func checkSubmission(honeypot string, acceptTerms, creating bool) error {
	if honeypot != "" {
		return apperrors.Validation("honeypot", "invalid submission")
	}
	if creating && !acceptTerms {
		return apperrors.Validation("accept_terms", "terms must be accepted")
	}
	return nil
}

func checkLength(field, value string, min, max int) error {
	n := utils.RuneLen(value)
	if n < min {
		return apperrors.Validation(field, "is required")
	}
	if n > max {
		return apperrors.Validation(field, "is too long")
	}
	return nil
}

func checkPhone(field, phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || !utils.IsValidPTPhone(phone) {
		return "", apperrors.Validation(field, "invalid phone number, use 9XXXXXXXX or +351XXXXXXXXX")
	}
	return utils.NormalizePhone(phone), nil
}

func checkCoordinates(prefix string, lat, lng *float64) error {
	if lat == nil && lng == nil {
		return nil
	}
	if lat == nil || lng == nil || !utils.ValidCoordinates(*lat, *lng) {
		return apperrors.Validation(prefix+"_lat", "latitude and longitude must both be valid")
	}
	return nil
}

func checkWindow(startField, endField string, start, end, now time.Time, creating bool) error {
	if start.IsZero() {
		return apperrors.Validation(startField, "is required")
	}
	if end.IsZero() {
		return apperrors.Validation(endField, "is required")
	}
	if creating && !start.After(now) {
		return apperrors.Validation(startField, "must be in the future")
	}
	if !end.After(start) {
		return apperrors.Validation(endField, "must be after "+startField)
	}
	return nil
}

// checkVocabulary lowercases and dedupes values, rejecting anything outside allowed
func checkVocabulary(field string, values, allowed []string) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if !contains(allowed, v) {
			return nil, apperrors.Validation(field, "unknown value "+v)
		}
		if !contains(out, v) {
			out = append(out, v)
		}
	}
	return out, nil
}

func checkNotes(notes string) error {
	if utils.RuneLen(notes) > notesMaxLen {
		return apperrors.Validation("notes", "is too long")
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
