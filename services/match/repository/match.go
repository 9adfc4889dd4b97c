package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/database"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/services/match"
)

const (
	requestColumns = `id, requester_name, requester_phone, pickup_location_text, dropoff_location_text,
		pickup_lat, pickup_lng, dropoff_lat, dropoff_lng, pickup_geohash,
		window_start, window_end, passengers, special_needs, notes, status,
		matched_offer_id, edit_token, created_at, updated_at`

	offerColumns = `id, driver_name, driver_phone, vehicle_type, seats_available, departure_area_text,
		can_go_distance, time_window_start, time_window_end, equipment, notes, status,
		edit_token, created_at, updated_at`

	matchColumns = `id, request_id, offer_id, coordinator_name, coordinator_phone, notes, status, created_at, updated_at`
)

// MatchRepo implements the match repository interface on Postgres
type MatchRepo struct {
	db *sqlx.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *sqlx.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

// GetRequest retrieves a ride request by ID
func (r *MatchRepo) GetRequest(ctx context.Context, id string) (*models.RideRequest, error) {
	var req models.RideRequest
	query := `SELECT ` + requestColumns + ` FROM ride_requests WHERE id = $1`
	if err := r.db.GetContext(ctx, &req, query, id); err != nil {
		return nil, database.TranslateError("get request", models.EntityRequest, id, err)
	}
	return &req, nil
}

// GetOffer retrieves a ride offer by ID
func (r *MatchRepo) GetOffer(ctx context.Context, id string) (*models.RideOffer, error) {
	var offer models.RideOffer
	query := `SELECT ` + offerColumns + ` FROM ride_offers WHERE id = $1`
	if err := r.db.GetContext(ctx, &offer, query, id); err != nil {
		return nil, database.TranslateError("get offer", models.EntityOffer, id, err)
	}
	return &offer, nil
}

// GetMatch retrieves a match by ID
func (r *MatchRepo) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	var m models.Match
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		return nil, database.TranslateError("get match", models.EntityMatch, id, err)
	}
	return &m, nil
}

// ListAvailableOffers returns AVAILABLE offers passing the coarse seat and window filter, newest first
func (r *MatchRepo) ListAvailableOffers(ctx context.Context, filter models.AvailableOfferFilter) ([]*models.RideOffer, error) {
	conds := []string{"status = $1"}
	args := []interface{}{models.OfferStatusAvailable}

	if filter.MinSeats > 0 {
		args = append(args, filter.MinSeats)
		conds = append(conds, fmt.Sprintf("seats_available >= $%d", len(args)))
	}
	if !filter.WindowEnd.IsZero() {
		args = append(args, filter.WindowEnd)
		conds = append(conds, fmt.Sprintf("time_window_start <= $%d", len(args)))
	}
	if !filter.WindowStart.IsZero() {
		args = append(args, filter.WindowStart)
		conds = append(conds, fmt.Sprintf("time_window_end >= $%d", len(args)))
	}

	query := `SELECT ` + offerColumns + ` FROM ride_offers WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY created_at DESC, id ASC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	offers := []*models.RideOffer{}
	if err := r.db.SelectContext(ctx, &offers, query, args...); err != nil {
		return nil, database.TranslateError("list available offers", models.EntityOffer, "", err)
	}
	return offers, nil
}

// ListMatches returns matches narrowed by filter, newest first
func (r *MatchRepo) ListMatches(ctx context.Context, filter models.MatchFilter) ([]*models.Match, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.RequestID != "" {
		args = append(args, filter.RequestID)
		conds = append(conds, fmt.Sprintf("request_id = $%d", len(args)))
	}
	if filter.OfferID != "" {
		args = append(args, filter.OfferID)
		conds = append(conds, fmt.Sprintf("offer_id = $%d", len(args)))
	}

	query := `SELECT ` + matchColumns + ` FROM matches`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC, id ASC`

	matches := []*models.Match{}
	if err := r.db.SelectContext(ctx, &matches, query, args...); err != nil {
		return nil, database.TranslateError("list matches", models.EntityMatch, "", err)
	}
	return matches, nil
}

// WithinTx runs fn in one database transaction and commits only if fn succeeds
func (r *MatchRepo) WithinTx(ctx context.Context, fn func(tx match.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return database.TranslateError("begin transaction", "", "", err)
	}
	defer tx.Rollback()

	if err := fn(&pgTx{tx: tx}); err != nil {
		return database.TranslateError("run transaction", "", "", err)
	}

	if err := tx.Commit(); err != nil {
		return database.TranslateError("commit transaction", "", "", err)
	}
	return nil
}

type pgTx struct {
	tx *sqlx.Tx
}

func (t *pgTx) GetRequestForUpdate(ctx context.Context, id string) (*models.RideRequest, error) {
	var req models.RideRequest
	query := `SELECT ` + requestColumns + ` FROM ride_requests WHERE id = $1 FOR UPDATE`
	if err := t.tx.GetContext(ctx, &req, query, id); err != nil {
		return nil, database.TranslateError("lock request", models.EntityRequest, id, err)
	}
	return &req, nil
}

func (t *pgTx) GetOfferForUpdate(ctx context.Context, id string) (*models.RideOffer, error) {
	var offer models.RideOffer
	query := `SELECT ` + offerColumns + ` FROM ride_offers WHERE id = $1 FOR UPDATE`
	if err := t.tx.GetContext(ctx, &offer, query, id); err != nil {
		return nil, database.TranslateError("lock offer", models.EntityOffer, id, err)
	}
	return &offer, nil
}

func (t *pgTx) GetMatchForUpdate(ctx context.Context, id string) (*models.Match, error) {
	var m models.Match
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1 FOR UPDATE`
	if err := t.tx.GetContext(ctx, &m, query, id); err != nil {
		return nil, database.TranslateError("lock match", models.EntityMatch, id, err)
	}
	return &m, nil
}

func (t *pgTx) LiveMatchForRequest(ctx context.Context, requestID string) (*models.Match, error) {
	return t.liveMatch(ctx, "request_id", requestID)
}

func (t *pgTx) LiveMatchForOffer(ctx context.Context, offerID string) (*models.Match, error) {
	return t.liveMatch(ctx, "offer_id", offerID)
}

func (t *pgTx) liveMatch(ctx context.Context, column, id string) (*models.Match, error) {
	var m models.Match
	query := `SELECT ` + matchColumns + ` FROM matches WHERE ` + column + ` = $1 AND status <> $2 FOR UPDATE`
	err := t.tx.GetContext(ctx, &m, query, id, models.MatchStatusCancelled)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, database.TranslateError("find live match", models.EntityMatch, id, err)
	}
	return &m, nil
}

// CreateMatch inserts m. The partial unique indexes turn a lost race into a ConflictError.
func (t *pgTx) CreateMatch(ctx context.Context, m *models.Match) error {
	query := `
		INSERT INTO matches (
			id, request_id, offer_id, coordinator_name, coordinator_phone, notes, status, created_at, updated_at
		) VALUES (
			:id, :request_id, :offer_id, :coordinator_name, :coordinator_phone, :notes, :status, :created_at, :updated_at
		)
	`
	if _, err := t.tx.NamedExecContext(ctx, query, m); err != nil {
		return database.TranslateError("create match", models.EntityMatch, m.ID, err)
	}
	return nil
}

func (t *pgTx) UpdateMatch(ctx context.Context, id string, u models.MatchUpdate) error {
	query := `UPDATE matches SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`
	result, err := t.tx.ExecContext(ctx, query, u.Status, u.UpdatedAt, id, u.ExpectedStatus)
	return checkSwap(result, err, "update match", models.EntityMatch, id, string(u.ExpectedStatus))
}

func (t *pgTx) UpdateRequestStatus(ctx context.Context, id string, u models.RequestUpdate) error {
	var (
		result sql.Result
		err    error
	)
	if u.SetMatchedOffer {
		query := `UPDATE ride_requests SET status = $1, matched_offer_id = $2, updated_at = $3 WHERE id = $4 AND status = $5`
		result, err = t.tx.ExecContext(ctx, query, u.Status, u.MatchedOfferID, u.UpdatedAt, id, u.ExpectedStatus)
	} else {
		query := `UPDATE ride_requests SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`
		result, err = t.tx.ExecContext(ctx, query, u.Status, u.UpdatedAt, id, u.ExpectedStatus)
	}
	return checkSwap(result, err, "update request status", models.EntityRequest, id, string(u.ExpectedStatus))
}

func (t *pgTx) UpdateOfferStatus(ctx context.Context, id string, u models.OfferUpdate) error {
	query := `UPDATE ride_offers SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`
	result, err := t.tx.ExecContext(ctx, query, u.Status, u.UpdatedAt, id, u.ExpectedStatus)
	return checkSwap(result, err, "update offer status", models.EntityOffer, id, string(u.ExpectedStatus))
}

// checkSwap turns a compare-and-swap that matched no row into a ConflictError
func checkSwap(result sql.Result, err error, op, entity, id, expected string) error {
	if err != nil {
		return database.TranslateError(op, entity, id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.TranslateError(op, entity, id, err)
	}
	if rows == 0 {
		return apperrors.Conflict(entity, id, "status is no longer "+expected)
	}
	return nil
}
