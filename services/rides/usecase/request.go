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

// SubmitRequest validates and stores a new request in NEW, returning its edit token once
func (uc *RidesUC) SubmitRequest(ctx context.Context, in models.RideRequestInput) (*models.RideRequestCreated, error) {
	created, err := uc.submitRequest(ctx, in)
	countSubmission(models.EntityRequest, err)
	return created, err
}

func (uc *RidesUC) submitRequest(ctx context.Context, in models.RideRequestInput) (*models.RideRequestCreated, error) {
	now := models.Now()
	if err := validateRequestInput(&in, now, true); err != nil {
		logger.InfoCtx(ctx, "Rejected ride request submission",
			logger.String("field", apperrors.FieldOf(err)),
			logger.Err(err))
		return nil, err
	}

	token, err := utils.GenerateEditToken()
	if err != nil {
		return nil, apperrors.Transient("generate edit token", err)
	}

	req := &models.RideRequest{
		ID:        uuid.NewString(),
		Status:    models.RequestStatusNew,
		EditToken: token,
		CreatedAt: now,
	}
	applyRequestInput(req, in, now)

	storeCtx, cancel := uc.storeCtx(ctx)
	defer cancel()
	if err := uc.ridesRepo.CreateRequest(storeCtx, req); err != nil {
		logger.ErrorCtx(ctx, "Failed to store ride request", logger.Err(err))
		return nil, apperrors.Transient("create request", err)
	}

	logger.InfoCtx(ctx, "Ride request submitted",
		logger.Entity(models.EntityRequest, req.ID),
		logger.Int("passengers", req.Passengers))
	uc.audit(ctx, constants.ActionRequestCreated, models.EntityRequest, req.ID, string(req.Status))

	return &models.RideRequestCreated{Request: req, EditToken: token}, nil
}

// GetRequestByToken returns the owner's view of a request
func (uc *RidesUC) GetRequestByToken(ctx context.Context, token string) (*models.RideRequest, error) {
	token, err := tokenOf(models.EntityRequest, token)
	if err != nil {
		return nil, err
	}

	storeCtx, cancel := uc.storeCtx(ctx)
	defer cancel()
	req, err := uc.ridesRepo.GetRequestByToken(storeCtx, token)
	if err != nil {
		return nil, apperrors.Transient("get request", err)
	}
	return req, nil
}

// UpdateRequest rewrites the owner-editable details while the request is not terminal.
// Status and the matched offer are never changed here, and a live match must still fit afterwards.
func (uc *RidesUC) UpdateRequest(ctx context.Context, token string, in models.RideRequestInput) (*models.RideRequest, error) {
	updated, err := uc.updateRequest(ctx, token, in)
	countSubmission(models.EntityRequest, err)
	return updated, err
}

func (uc *RidesUC) updateRequest(ctx context.Context, token string, in models.RideRequestInput) (*models.RideRequest, error) {
	now := models.Now()
	if err := validateRequestInput(&in, now, false); err != nil {
		return nil, err
	}

	current, err := uc.GetRequestByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if current.Status.IsTerminal() {
		return nil, notEditable(models.EntityRequest, current.ID, string(current.Status))
	}

	next := current.Clone()
	applyRequestInput(next, in, now)
	if err := uc.matchOps.CheckRequestEdit(ctx, current.ID, next); err != nil {
		return nil, err
	}

	storeCtx, cancel := uc.storeCtx(ctx)
	defer cancel()
	if err := uc.ridesRepo.UpdateRequestDetails(storeCtx, next, current.Status); err != nil {
		return nil, apperrors.Transient("update request", err)
	}

	uc.audit(ctx, constants.ActionRequestUpdated, models.EntityRequest, next.ID, string(next.Status))
	return next, nil
}

// CancelRequestByToken resolves the token and cancels through the lifecycle cascade
func (uc *RidesUC) CancelRequestByToken(ctx context.Context, token string) (*models.RideRequest, error) {
	req, err := uc.GetRequestByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return uc.matchOps.CancelRequest(ctx, req.ID, req.EditToken)
}

// ListPublicRequests lists requests with masked contact details.
// Search only looks at locations so contact details cannot be probed.
func (uc *RidesUC) ListPublicRequests(ctx context.Context, filter models.RequestFilter) ([]*models.PublicRideRequest, error) {
	search := utils.SanitizeString(filter.Search)

	storeCtx, cancel := uc.storeCtx(ctx)
	defer cancel()
	requests, err := uc.ridesRepo.ListRequests(storeCtx, models.RequestFilter{Status: filter.Status})
	if err != nil {
		return nil, apperrors.Transient("list requests", err)
	}

	out := make([]*models.PublicRideRequest, 0, len(requests))
	for _, r := range requests {
		if search != "" && !utils.AnyContainsFold(search, r.PickupLocationText, r.DropoffLocationText) {
			continue
		}
		out = append(out, &models.PublicRideRequest{
			ID:                  r.ID,
			RequesterName:       utils.MaskName(r.RequesterName),
			RequesterPhone:      utils.MaskPhone(r.RequesterPhone),
			PickupLocationText:  r.PickupLocationText,
			DropoffLocationText: r.DropoffLocationText,
			WindowStart:         r.WindowStart,
			WindowEnd:           r.WindowEnd,
			Passengers:          r.Passengers,
			SpecialNeeds:        []string(r.SpecialNeeds),
			Status:              r.Status,
			CreatedAt:           r.CreatedAt,
		})
	}
	return out, nil
}

// ListRequests is the coordinator listing with full contact details
func (uc *RidesUC) ListRequests(ctx context.Context, auth models.AuthContext, filter models.RequestFilter) ([]*models.RideRequest, error) {
	if err := requireCoordinator(auth, "list requests"); err != nil {
		return nil, err
	}
	filter.Search = utils.SanitizeString(filter.Search)
	filter.GeohashPrefix = normalizeGeohash(filter.GeohashPrefix)

	storeCtx, cancel := uc.storeCtx(ctx)
	defer cancel()
	requests, err := uc.ridesRepo.ListRequests(storeCtx, filter)
	if err != nil {
		return nil, apperrors.Transient("list requests", err)
	}
	return requests, nil
}

func applyRequestInput(r *models.RideRequest, in models.RideRequestInput, now time.Time) {
	r.RequesterName = in.RequesterName
	r.RequesterPhone = in.RequesterPhone
	r.PickupLocationText = in.PickupLocationText
	r.DropoffLocationText = in.DropoffLocationText
	r.PickupLat = in.PickupLat
	r.PickupLng = in.PickupLng
	r.DropoffLat = in.DropoffLat
	r.DropoffLng = in.DropoffLng
	r.PickupGeohash = utils.PickupGeohash(in.PickupLat, in.PickupLng)
	r.WindowStart = in.WindowStart
	r.WindowEnd = in.WindowEnd
	r.Passengers = in.Passengers
	r.SpecialNeeds = pq.StringArray(in.SpecialNeeds)
	r.Notes = in.Notes
	r.UpdatedAt = now
}
