// Package lifecycle holds the legal status transitions for requests, offers
// and matches and turns each trigger into the full set of linked writes.
//
// Planning is pure: Plan* functions look at the current rows and either
// return a Cascade or an IllegalTransitionError. Apply writes a Cascade
// through a store transaction, so every change of one trigger commits or
// rolls back together.
package lifecycle

import (
	"context"
	"time"

	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/constants"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/services/match"
)

// Trigger names a state-changing action
type Trigger string

const (
	TriggerConfirm       Trigger = "confirm"
	TriggerStart         Trigger = "start"
	TriggerComplete      Trigger = "complete"
	TriggerCancelMatch   Trigger = "cancel_match"
	TriggerTriage        Trigger = "triage"
	TriggerArchive       Trigger = "archive"
	TriggerCancelRequest Trigger = "cancel_request"
	TriggerCancelOffer   Trigger = "cancel_offer"
)

// MatchChange moves a match between statuses
type MatchChange struct {
	ID   string
	From models.MatchStatus
	To   models.MatchStatus
}

// RequestChange moves a request between statuses and optionally rewrites matched_offer_id
type RequestChange struct {
	ID              string
	From            models.RequestStatus
	To              models.RequestStatus
	SetMatchedOffer bool
	MatchedOfferID  *string
}

// OfferChange moves an offer between statuses
type OfferChange struct {
	ID   string
	From models.OfferStatus
	To   models.OfferStatus
}

// Cascade is every write caused by one trigger. Nil parts are left untouched.
type Cascade struct {
	Trigger Trigger
	Match   *MatchChange
	Request *RequestChange
	Offer   *OfferChange
}

var matchTriggers = map[models.MatchStatus]map[models.MatchStatus]Trigger{
	models.MatchStatusProposed: {
		models.MatchStatusConfirmed: TriggerConfirm,
		models.MatchStatusCancelled: TriggerCancelMatch,
	},
	models.MatchStatusConfirmed: {
		models.MatchStatusInProgress: TriggerStart,
		models.MatchStatusDone:       TriggerComplete,
		models.MatchStatusCancelled:  TriggerCancelMatch,
	},
	models.MatchStatusInProgress: {
		models.MatchStatusDone: TriggerComplete,
	},
}

// MatchTrigger resolves the single trigger moving a match from one status to another
func MatchTrigger(id string, from, to models.MatchStatus) (Trigger, error) {
	if t, ok := matchTriggers[from][to]; ok {
		return t, nil
	}
	reason := ""
	if from == to {
		reason = "match is already " + string(to)
	} else if from.IsTerminal() {
		reason = "match is " + string(from)
	}
	return "", illegal(models.EntityMatch, id, string(from), string(to), reason)
}

type requestRule struct {
	from []models.RequestStatus
	to   models.RequestStatus
}

type offerRule struct {
	from []models.OfferStatus
	to   models.OfferStatus
}

// Linked-entity effects of the match triggers
var (
	requestOnMatch = map[Trigger]requestRule{
		TriggerConfirm:     {from: []models.RequestStatus{models.RequestStatusNew, models.RequestStatusTriage}, to: models.RequestStatusConfirmed},
		TriggerStart:       {from: []models.RequestStatus{models.RequestStatusConfirmed}, to: models.RequestStatusInProgress},
		TriggerComplete:    {from: []models.RequestStatus{models.RequestStatusConfirmed, models.RequestStatusInProgress}, to: models.RequestStatusDone},
		TriggerCancelMatch: {from: []models.RequestStatus{models.RequestStatusNew, models.RequestStatusTriage, models.RequestStatusConfirmed}, to: models.RequestStatusNew},
	}
	offerOnMatch = map[Trigger]offerRule{
		TriggerConfirm:     {from: []models.OfferStatus{models.OfferStatusAvailable}, to: models.OfferStatusReserved},
		TriggerStart:       {from: []models.OfferStatus{models.OfferStatusReserved}, to: models.OfferStatusInProgress},
		TriggerComplete:    {from: []models.OfferStatus{models.OfferStatusReserved, models.OfferStatusInProgress}, to: models.OfferStatusDone},
		TriggerCancelMatch: {from: []models.OfferStatus{models.OfferStatusAvailable, models.OfferStatusReserved}, to: models.OfferStatusAvailable},
	}
)

// PlanMatchTransition builds the cascade moving m to target together with its request and offer
func PlanMatchTransition(m *models.Match, request *models.RideRequest, offer *models.RideOffer, target models.MatchStatus) (*Cascade, error) {
	trigger, err := MatchTrigger(m.ID, m.Status, target)
	if err != nil {
		return nil, err
	}

	rr := requestOnMatch[trigger]
	if !containsRequest(rr.from, request.Status) {
		return nil, illegal(models.EntityMatch, m.ID, string(m.Status), string(target),
			"request "+request.ID+" is "+string(request.Status))
	}
	or := offerOnMatch[trigger]
	if !containsOffer(or.from, offer.Status) {
		return nil, illegal(models.EntityMatch, m.ID, string(m.Status), string(target),
			"offer "+offer.ID+" is "+string(offer.Status))
	}

	reqChange := &RequestChange{ID: request.ID, From: request.Status, To: rr.to}
	switch trigger {
	case TriggerConfirm:
		offerID := offer.ID
		reqChange.SetMatchedOffer = true
		reqChange.MatchedOfferID = &offerID
	case TriggerComplete, TriggerCancelMatch:
		reqChange.SetMatchedOffer = true
	}

	return &Cascade{
		Trigger: trigger,
		Match:   &MatchChange{ID: m.ID, From: m.Status, To: target},
		Request: reqChange,
		Offer:   &OfferChange{ID: offer.ID, From: offer.Status, To: or.to},
	}, nil
}

// PlanPropose checks that a new PROPOSED match may pair request with offer.
// requestLive and offerLive are the current live matches, nil when there are none.
func PlanPropose(request *models.RideRequest, offer *models.RideOffer, requestLive, offerLive *models.Match) error {
	if requestLive != nil {
		return apperrors.Conflict(models.EntityRequest, request.ID, "request already has live match "+requestLive.ID)
	}
	if !request.Status.IsPreMatch() {
		return illegal(models.EntityRequest, request.ID, string(request.Status), string(models.MatchStatusProposed),
			"only NEW or TRIAGE requests can be matched")
	}
	if offer.Status != models.OfferStatusAvailable {
		return apperrors.Conflict(models.EntityOffer, offer.ID, "offer is "+string(offer.Status))
	}
	if offerLive != nil {
		return apperrors.Conflict(models.EntityOffer, offer.ID, "offer already has live match "+offerLive.ID)
	}
	return nil
}

// PlanRequestCancel cancels request and releases whatever its live match holds.
// A live match that is already IN_PROGRESS blocks the cancellation.
func PlanRequestCancel(request *models.RideRequest, live *models.Match, offer *models.RideOffer) (*Cascade, error) {
	if request.Status.IsTerminal() {
		return nil, illegal(models.EntityRequest, request.ID, string(request.Status), string(models.RequestStatusCancelled), "")
	}
	c := &Cascade{
		Trigger: TriggerCancelRequest,
		Request: &RequestChange{
			ID:              request.ID,
			From:            request.Status,
			To:              models.RequestStatusCancelled,
			SetMatchedOffer: true,
		},
	}
	if live == nil {
		if request.Status == models.RequestStatusInProgress {
			return nil, illegal(models.EntityRequest, request.ID, string(request.Status), string(models.RequestStatusCancelled), "ride is in progress")
		}
		return c, nil
	}

	if _, err := MatchTrigger(live.ID, live.Status, models.MatchStatusCancelled); err != nil {
		return nil, illegal(models.EntityRequest, request.ID, string(request.Status), string(models.RequestStatusCancelled),
			"match "+live.ID+" is "+string(live.Status))
	}
	c.Match = &MatchChange{ID: live.ID, From: live.Status, To: models.MatchStatusCancelled}
	if offer != nil && offer.Status == models.OfferStatusReserved {
		c.Offer = &OfferChange{ID: offer.ID, From: offer.Status, To: models.OfferStatusAvailable}
	}
	return c, nil
}

// PlanOfferCancel cancels offer and hands its live match's request back to the queue.
// A live match that is already IN_PROGRESS blocks the cancellation.
func PlanOfferCancel(offer *models.RideOffer, live *models.Match, request *models.RideRequest) (*Cascade, error) {
	if offer.Status.IsTerminal() {
		return nil, illegal(models.EntityOffer, offer.ID, string(offer.Status), string(models.OfferStatusCancelled), "")
	}
	c := &Cascade{
		Trigger: TriggerCancelOffer,
		Offer:   &OfferChange{ID: offer.ID, From: offer.Status, To: models.OfferStatusCancelled},
	}
	if live == nil {
		if offer.Status == models.OfferStatusInProgress {
			return nil, illegal(models.EntityOffer, offer.ID, string(offer.Status), string(models.OfferStatusCancelled), "ride is in progress")
		}
		return c, nil
	}

	if _, err := MatchTrigger(live.ID, live.Status, models.MatchStatusCancelled); err != nil {
		return nil, illegal(models.EntityOffer, offer.ID, string(offer.Status), string(models.OfferStatusCancelled),
			"match "+live.ID+" is "+string(live.Status))
	}
	c.Match = &MatchChange{ID: live.ID, From: live.Status, To: models.MatchStatusCancelled}
	if request != nil && request.Status == models.RequestStatusConfirmed {
		c.Request = &RequestChange{
			ID:              request.ID,
			From:            request.Status,
			To:              models.RequestStatusNew,
			SetMatchedOffer: true,
		}
	}
	return c, nil
}

// PlanRequestStatus handles the coordinator's direct request status changes:
// TRIAGE, DONE (archive, only without a live match) and CANCELLED.
func PlanRequestStatus(request *models.RideRequest, target models.RequestStatus, live *models.Match, offer *models.RideOffer) (*Cascade, error) {
	switch target {
	case models.RequestStatusTriage:
		if request.Status != models.RequestStatusNew {
			return nil, illegal(models.EntityRequest, request.ID, string(request.Status), string(target), "")
		}
		return &Cascade{
			Trigger: TriggerTriage,
			Request: &RequestChange{ID: request.ID, From: request.Status, To: target},
		}, nil
	case models.RequestStatusDone:
		if !request.Status.IsPreMatch() {
			return nil, illegal(models.EntityRequest, request.ID, string(request.Status), string(target),
				"only NEW or TRIAGE requests can be archived")
		}
		if live != nil {
			return nil, illegal(models.EntityRequest, request.ID, string(request.Status), string(target),
				"request has live match "+live.ID)
		}
		return &Cascade{
			Trigger: TriggerArchive,
			Request: &RequestChange{ID: request.ID, From: request.Status, To: target},
		}, nil
	case models.RequestStatusCancelled:
		return PlanRequestCancel(request, live, offer)
	}
	return nil, illegal(models.EntityRequest, request.ID, string(request.Status), string(target),
		"status is driven by the match")
}

// PlanOfferStatus handles the coordinator's direct offer status changes. Only CANCELLED is allowed.
func PlanOfferStatus(offer *models.RideOffer, target models.OfferStatus, live *models.Match, request *models.RideRequest) (*Cascade, error) {
	if target != models.OfferStatusCancelled {
		return nil, illegal(models.EntityOffer, offer.ID, string(offer.Status), string(target),
			"status is driven by the match")
	}
	return PlanOfferCancel(offer, live, request)
}

// Apply writes c inside tx, stamping every row with now.
// Each write is guarded by the status it was planned from.
func Apply(ctx context.Context, tx match.Tx, c *Cascade, now time.Time) error {
	if c.Match != nil {
		if err := tx.UpdateMatch(ctx, c.Match.ID, models.MatchUpdate{
			ExpectedStatus: c.Match.From,
			Status:         c.Match.To,
			UpdatedAt:      now,
		}); err != nil {
			return err
		}
	}
	if c.Request != nil {
		if err := tx.UpdateRequestStatus(ctx, c.Request.ID, models.RequestUpdate{
			ExpectedStatus:  c.Request.From,
			Status:          c.Request.To,
			SetMatchedOffer: c.Request.SetMatchedOffer,
			MatchedOfferID:  c.Request.MatchedOfferID,
			UpdatedAt:       now,
		}); err != nil {
			return err
		}
	}
	if c.Offer != nil {
		if err := tx.UpdateOfferStatus(ctx, c.Offer.ID, models.OfferUpdate{
			ExpectedStatus: c.Offer.From,
			Status:         c.Offer.To,
			UpdatedAt:      now,
		}); err != nil {
			return err
		}
	}
	return nil
}

var actions = map[Trigger]string{
	TriggerConfirm:       constants.ActionMatchConfirmed,
	TriggerStart:         constants.ActionMatchStarted,
	TriggerComplete:      constants.ActionMatchCompleted,
	TriggerCancelMatch:   constants.ActionMatchCancelled,
	TriggerTriage:        constants.ActionRequestTriaged,
	TriggerArchive:       constants.ActionRequestArchived,
	TriggerCancelRequest: constants.ActionRequestCancelled,
	TriggerCancelOffer:   constants.ActionOfferCancelled,
}

// Action is the audit action recorded for the trigger
func (c *Cascade) Action() string {
	return actions[c.Trigger]
}

// AuditEntry describes the cascade as one audit record on its primary entity.
// Linked changes go under the cascade metadata key.
func (c *Cascade) AuditEntry(actor string) *models.AuditLogEntry {
	meta := map[string]interface{}{}
	if actor != "" {
		meta[constants.MetaActor] = actor
	}

	var (
		entityType, entityID string
		linked               []map[string]interface{}
	)
	switch c.Trigger {
	case TriggerTriage, TriggerArchive, TriggerCancelRequest:
		entityType, entityID = models.EntityRequest, c.Request.ID
		meta[constants.MetaPreviousStatus] = string(c.Request.From)
		meta[constants.MetaNewStatus] = string(c.Request.To)
	case TriggerCancelOffer:
		entityType, entityID = models.EntityOffer, c.Offer.ID
		meta[constants.MetaPreviousStatus] = string(c.Offer.From)
		meta[constants.MetaNewStatus] = string(c.Offer.To)
	default:
		entityType, entityID = models.EntityMatch, c.Match.ID
		meta[constants.MetaPreviousStatus] = string(c.Match.From)
		meta[constants.MetaNewStatus] = string(c.Match.To)
	}

	if c.Match != nil {
		meta[constants.MetaMatchID] = c.Match.ID
		if entityType != models.EntityMatch {
			linked = append(linked, change(models.EntityMatch, c.Match.ID, string(c.Match.From), string(c.Match.To)))
		}
	}
	if c.Request != nil {
		meta[constants.MetaRequestID] = c.Request.ID
		if entityType != models.EntityRequest {
			linked = append(linked, change(models.EntityRequest, c.Request.ID, string(c.Request.From), string(c.Request.To)))
		}
	}
	if c.Offer != nil {
		meta[constants.MetaOfferID] = c.Offer.ID
		if entityType != models.EntityOffer {
			linked = append(linked, change(models.EntityOffer, c.Offer.ID, string(c.Offer.From), string(c.Offer.To)))
		}
	}
	if len(linked) > 0 {
		meta[constants.MetaCascade] = linked
	}

	return &models.AuditLogEntry{
		Action:     c.Action(),
		EntityType: entityType,
		EntityID:   entityID,
		Metadata:   meta,
	}
}

func change(entity, id, from, to string) map[string]interface{} {
	return map[string]interface{}{
		"entity": entity,
		"id":     id,
		"from":   from,
		"to":     to,
	}
}

func illegal(entity, id, from, to, reason string) error {
	return &apperrors.IllegalTransitionError{Entity: entity, ID: id, From: from, To: to, Reason: reason}
}

func containsRequest(set []models.RequestStatus, s models.RequestStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsOffer(set []models.OfferStatus, s models.OfferStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
