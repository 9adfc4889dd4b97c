package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/database"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/internal/utils"
)

const (
	requestColumns = `id, requester_name, requester_phone, pickup_location_text, dropoff_location_text,
		pickup_lat, pickup_lng, dropoff_lat, dropoff_lng, pickup_geohash,
		window_start, window_end, passengers, special_needs, notes, status,
		matched_offer_id, edit_token, created_at, updated_at`

	offerColumns = `id, driver_name, driver_phone, vehicle_type, seats_available, departure_area_text,
		can_go_distance, time_window_start, time_window_end, equipment, notes, status,
		edit_token, created_at, updated_at`
)

// RidesRepo implements the rides repository interface on Postgres
type RidesRepo struct {
	db *sqlx.DB
}

// NewRidesRepository creates a new rides repository
func NewRidesRepository(db *sqlx.DB) *RidesRepo {
	return &RidesRepo{db: db}
}

// CreateRequest inserts a new ride request
func (r *RidesRepo) CreateRequest(ctx context.Context, req *models.RideRequest) error {
	query := `
		INSERT INTO ride_requests (
			id, requester_name, requester_phone, pickup_location_text, dropoff_location_text,
			pickup_lat, pickup_lng, dropoff_lat, dropoff_lng, pickup_geohash,
			window_start, window_end, passengers, special_needs, notes, status,
			matched_offer_id, edit_token, created_at, updated_at
		) VALUES (
			:id, :requester_name, :requester_phone, :pickup_location_text, :dropoff_location_text,
			:pickup_lat, :pickup_lng, :dropoff_lat, :dropoff_lng, :pickup_geohash,
			:window_start, :window_end, :passengers, :special_needs, :notes, :status,
			:matched_offer_id, :edit_token, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, req); err != nil {
		return database.TranslateError("create request", models.EntityRequest, req.ID, err)
	}
	return nil
}

// GetRequestByToken retrieves a ride request by its owner token
func (r *RidesRepo) GetRequestByToken(ctx context.Context, token string) (*models.RideRequest, error) {
	var req models.RideRequest
	query := `SELECT ` + requestColumns + ` FROM ride_requests WHERE edit_token = $1`
	if err := r.db.GetContext(ctx, &req, query, token); err != nil {
		return nil, database.TranslateError("get request by token", models.EntityRequest, "for token", err)
	}
	return &req, nil
}

// UpdateRequestDetails rewrites the owner-editable columns if the status is still expected
func (r *RidesRepo) UpdateRequestDetails(ctx context.Context, req *models.RideRequest, expected models.RequestStatus) error {
	query := `
		UPDATE ride_requests SET
			requester_name = $1, requester_phone = $2, pickup_location_text = $3, dropoff_location_text = $4,
			pickup_lat = $5, pickup_lng = $6, dropoff_lat = $7, dropoff_lng = $8, pickup_geohash = $9,
			window_start = $10, window_end = $11, passengers = $12, special_needs = $13, notes = $14,
			updated_at = $15
		WHERE id = $16 AND status = $17
	`
	result, err := r.db.ExecContext(ctx, query,
		req.RequesterName, req.RequesterPhone, req.PickupLocationText, req.DropoffLocationText,
		req.PickupLat, req.PickupLng, req.DropoffLat, req.DropoffLng, req.PickupGeohash,
		req.WindowStart, req.WindowEnd, req.Passengers, req.SpecialNeeds, req.Notes,
		req.UpdatedAt, req.ID, expected)
	return checkUpdated(result, err, "update request", models.EntityRequest, req.ID)
}

// ListRequests lists requests narrowed by filter, newest first
func (r *RidesRepo) ListRequests(ctx context.Context, filter models.RequestFilter) ([]*models.RideRequest, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if cells := utils.GeohashPrefixes(filter.GeohashPrefix, filter.Near); len(cells) > 0 {
		likes := make([]string, 0, len(cells))
		for _, cell := range cells {
			args = append(args, cell+"%")
			likes = append(likes, fmt.Sprintf("pickup_geohash LIKE $%d", len(args)))
		}
		conds = append(conds, "("+strings.Join(likes, " OR ")+")")
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(requester_name ILIKE $%d OR requester_phone ILIKE $%d OR pickup_location_text ILIKE $%d OR dropoff_location_text ILIKE $%d OR notes ILIKE $%d)",
			n, n, n, n, n))
	}

	query := `SELECT ` + requestColumns + ` FROM ride_requests` + where(conds) + ` ORDER BY created_at DESC, id ASC`

	requests := []*models.RideRequest{}
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, database.TranslateError("list requests", models.EntityRequest, "", err)
	}
	return requests, nil
}

// CreateOffer inserts a new ride offer
func (r *RidesRepo) CreateOffer(ctx context.Context, offer *models.RideOffer) error {
	query := `
		INSERT INTO ride_offers (
			id, driver_name, driver_phone, vehicle_type, seats_available, departure_area_text,
			can_go_distance, time_window_start, time_window_end, equipment, notes, status,
			edit_token, created_at, updated_at
		) VALUES (
			:id, :driver_name, :driver_phone, :vehicle_type, :seats_available, :departure_area_text,
			:can_go_distance, :time_window_start, :time_window_end, :equipment, :notes, :status,
			:edit_token, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, offer); err != nil {
		return database.TranslateError("create offer", models.EntityOffer, offer.ID, err)
	}
	return nil
}

// GetOfferByToken retrieves a ride offer by its owner token
func (r *RidesRepo) GetOfferByToken(ctx context.Context, token string) (*models.RideOffer, error) {
	var offer models.RideOffer
	query := `SELECT ` + offerColumns + ` FROM ride_offers WHERE edit_token = $1`
	if err := r.db.GetContext(ctx, &offer, query, token); err != nil {
		return nil, database.TranslateError("get offer by token", models.EntityOffer, "for token", err)
	}
	return &offer, nil
}

// UpdateOfferDetails rewrites the driver-editable columns if the status is still expected
func (r *RidesRepo) UpdateOfferDetails(ctx context.Context, offer *models.RideOffer, expected models.OfferStatus) error {
	query := `
		UPDATE ride_offers SET
			driver_name = $1, driver_phone = $2, vehicle_type = $3, seats_available = $4,
			departure_area_text = $5, can_go_distance = $6, time_window_start = $7, time_window_end = $8,
			equipment = $9, notes = $10, updated_at = $11
		WHERE id = $12 AND status = $13
	`
	result, err := r.db.ExecContext(ctx, query,
		offer.DriverName, offer.DriverPhone, offer.VehicleType, offer.SeatsAvailable,
		offer.DepartureAreaText, offer.CanGoDistance, offer.TimeWindowStart, offer.TimeWindowEnd,
		offer.Equipment, offer.Notes, offer.UpdatedAt, offer.ID, expected)
	return checkUpdated(result, err, "update offer", models.EntityOffer, offer.ID)
}

// ListOffers lists offers narrowed by filter, newest first
func (r *RidesRepo) ListOffers(ctx context.Context, filter models.OfferFilter) ([]*models.RideOffer, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(driver_name ILIKE $%d OR driver_phone ILIKE $%d OR departure_area_text ILIKE $%d OR notes ILIKE $%d)",
			n, n, n, n))
	}

	query := `SELECT ` + offerColumns + ` FROM ride_offers` + where(conds) + ` ORDER BY created_at DESC, id ASC`

	offers := []*models.RideOffer{}
	if err := r.db.SelectContext(ctx, &offers, query, args...); err != nil {
		return nil, database.TranslateError("list offers", models.EntityOffer, "", err)
	}
	return offers, nil
}

func where(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// checkUpdated reports a detail update that matched no row as a status conflict
func checkUpdated(result sql.Result, err error, op, entity, id string) error {
	if err != nil {
		return database.TranslateError(op, entity, id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.TranslateError(op, entity, id, err)
	}
	if rows == 0 {
		return apperrors.Conflict(entity, id, "status changed or record removed")
	}
	return nil
}
