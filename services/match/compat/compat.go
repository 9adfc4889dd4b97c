// Package compat decides which ride offers can serve a ride request.
// Everything here is a pure function of its arguments.
package compat

import (
	"sort"

	"github.com/piresc/boleias/internal/pkg/models"
)

// IsCompatible reports whether offer can carry request: the offer is AVAILABLE,
// has enough seats, and its window overlaps the request window.
// Windows touching at an endpoint count as overlapping.
func IsCompatible(request *models.RideRequest, offer *models.RideOffer) bool {
	if request == nil || offer == nil {
		return false
	}
	return offer.Status == models.OfferStatusAvailable && Fits(request, offer)
}

// Fits reports whether the seats and windows of the pair agree, whatever the offer status.
// It is the part of the predicate a live match must keep satisfying after owner edits.
func Fits(request *models.RideRequest, offer *models.RideOffer) bool {
	if request == nil || offer == nil {
		return false
	}
	if offer.SeatsAvailable < request.Passengers {
		return false
	}
	return !offer.TimeWindowStart.After(request.WindowEnd) &&
		!offer.TimeWindowEnd.Before(request.WindowStart)
}

// FindCompatibleOffers returns the offers in pool that can serve request,
// newest first with ties broken by ascending id. The pool slice is not reordered.
func FindCompatibleOffers(request *models.RideRequest, pool []*models.RideOffer) []*models.RideOffer {
	out := make([]*models.RideOffer, 0, len(pool))
	for _, offer := range pool {
		if IsCompatible(request, offer) {
			out = append(out, offer)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Filter builds the store-side pre-filter for the candidate pool of request.
// The store may return a superset; FindCompatibleOffers has the final say.
func Filter(request *models.RideRequest, limit int) models.AvailableOfferFilter {
	return models.AvailableOfferFilter{
		MinSeats:    request.Passengers,
		WindowStart: request.WindowStart,
		WindowEnd:   request.WindowEnd,
		Limit:       limit,
	}
}
