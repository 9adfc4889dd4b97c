package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/constants"
	"github.com/piresc/boleias/internal/pkg/logger"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/internal/utils"
)

// SubmitOffer validates and stores a new offer in AVAILABLE, returning its edit token once
func (uc *RidesUC) SubmitOffer(ctx context.Context, in models.RideOfferInput) (*models.RideOfferCreated, error) {
	created, err := uc.submitOffer(ctx, in)
	countSubmission(models.EntityOffer, err)
	return created, err
}

func (uc *RidesUC) submitOffer(ctx context.Context, in models.RideOfferInput) (*models.RideOfferCreated, error) {
	now := models.Now()
	if err := validateOfferInput(&in, now, true); err != nil {
		logger.InfoCtx(ctx, "Rejected ride offer submission",
			logger.String("field", apperrors.FieldOf(err)),
			logger.Err(err))
		return nil, err
	}

	token, err := utils.GenerateEditToken()
	if err != nil {
		return nil, apperrors.Transient("generate edit token", err)
	}

	offer := &models.RideOffer{
		ID:        uuid.NewString(),
		Status:    models.OfferStatusAvailable,
		EditToken: token,
		CreatedAt: now,
	}
	applyOfferInput(offer, in, now)

	storeCtx, cancel := uc.storeCtx(ctx)
	defer cancel()
	if err := uc.ridesRepo.CreateOffer(storeCtx, offer); err != nil {
		logger.ErrorCtx(ctx, "Failed to store ride offer", logger.Err(err))
		return nil, apperrors.Transient("create offer", err)
	}

	logger.InfoCtx(ctx, "Ride offer submitted",
		logger.Entity(models.EntityOffer, offer.ID),
		logger.Int("seats_available", offer.SeatsAvailable))
	uc.audit(ctx, constants.ActionOfferCreated, models.EntityOffer, offer.ID, string(offer.Status))

	return &models.RideOfferCreated{Offer: offer, EditToken: token}, nil
}

// GetOfferByToken returns the driver's view of an offer
func (uc *RidesUC) GetOfferByToken(ctx context.Context, token string) (*models.RideOffer, error) {
	token, err := tokenOf(models.EntityOffer, token)
	if err != nil {
		return nil, err
	}

	storeCtx, cancel := uc.storeCtx(ctx)
	defer cancel()
	offer, err := uc.ridesRepo.GetOfferByToken(storeCtx, token)
	if err != nil {
		return nil, apperrors.Transient("get offer", err)
	}
	return offer, nil
}

// UpdateOffer rewrites the driver-editable details while the offer is not terminal
func (uc *RidesUC) UpdateOffer(ctx context.Context, token string, in models.RideOfferInput) (*models.RideOffer, error) {
	updated, err := uc.updateOffer(ctx, token, in)
	countSubmission(models.EntityOffer, err)
	return updated, err
}

func (uc *RidesUC) updateOffer(ctx context.Context, token string, in models.RideOfferInput) (*models.RideOffer, error) {
	now := models.Now()
	if err := validateOfferInput(&in, now, false); err != nil {
		return nil, err
	}

	current, err := uc.GetOfferByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if current.Status.IsTerminal() {
		return nil, notEditable(models.EntityOffer, current.ID, string(current.Status))
	}

	next := current.Clone()
	applyOfferInput(next, in, now)
	if err := uc.matchOps.CheckOfferEdit(ctx, current.ID, next); err != nil {
		return nil, err
	}

	storeCtx, cancel := uc.storeCtx(ctx)
	defer cancel()
	if err := uc.ridesRepo.UpdateOfferDetails(storeCtx, next, current.Status); err != nil {
		return nil, apperrors.Transient("update offer", err)
	}

	uc.audit(ctx, constants.ActionOfferUpdated, models.EntityOffer, next.ID, string(next.Status))
	return next, nil
}

// CancelOfferByToken resolves the token and cancels through the lifecycle cascade
func (uc *RidesUC) CancelOfferByToken(ctx context.Context, token string) (*models.RideOffer, error) {
	offer, err := uc.GetOfferByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return uc.matchOps.CancelOffer(ctx, offer.ID, offer.EditToken)
}

// ListPublicOffers lists offers with masked contact details
func (uc *RidesUC) ListPublicOffers(ctx context.Context, filter models.OfferFilter) ([]*models.PublicRideOffer, error) {
	search := utils.SanitizeString(filter.Search)

	storeCtx, cancel := uc.storeCtx(ctx)
	defer cancel()
	offers, err := uc.ridesRepo.ListOffers(storeCtx, models.OfferFilter{Status: filter.Status})
	if err != nil {
		return nil, apperrors.Transient("list offers", err)
	}

	out := make([]*models.PublicRideOffer, 0, len(offers))
	for _, o := range offers {
		if search != "" && !utils.AnyContainsFold(search, o.DepartureAreaText) {
			continue
		}
		out = append(out, &models.PublicRideOffer{
			ID:                o.ID,
			DriverName:        utils.MaskName(o.DriverName),
			DriverPhone:       utils.MaskPhone(o.DriverPhone),
			VehicleType:       o.VehicleType,
			SeatsAvailable:    o.SeatsAvailable,
			DepartureAreaText: o.DepartureAreaText,
			CanGoDistance:     o.CanGoDistance,
			TimeWindowStart:   o.TimeWindowStart,
			TimeWindowEnd:     o.TimeWindowEnd,
			Equipment:         []string(o.Equipment),
			Status:            o.Status,
			CreatedAt:         o.CreatedAt,
		})
	}
	return out, nil
}

// ListOffers is the coordinator listing with full contact details
func (uc *RidesUC) ListOffers(ctx context.Context, auth models.AuthContext, filter models.OfferFilter) ([]*models.RideOffer, error) {
	if err := requireCoordinator(auth, "list offers"); err != nil {
		return nil, err
	}
	filter.Search = utils.SanitizeString(filter.Search)

	storeCtx, cancel := uc.storeCtx(ctx)
	defer cancel()
	offers, err := uc.ridesRepo.ListOffers(storeCtx, filter)
	if err != nil {
		return nil, apperrors.Transient("list offers", err)
	}
	return offers, nil
}

func applyOfferInput(o *models.RideOffer, in models.RideOfferInput, now time.Time) {
	o.DriverName = in.DriverName
	o.DriverPhone = in.DriverPhone
	o.VehicleType = in.VehicleType
	o.SeatsAvailable = in.SeatsAvailable
	o.DepartureAreaText = in.DepartureAreaText
	o.CanGoDistance = in.CanGoDistance
	o.TimeWindowStart = in.TimeWindowStart
	o.TimeWindowEnd = in.TimeWindowEnd
	o.Equipment = pq.StringArray(in.Equipment)
	o.Notes = in.Notes
	o.UpdatedAt = now
}
