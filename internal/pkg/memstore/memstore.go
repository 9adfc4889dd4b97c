// Package memstore is an in-memory entity store for local runs and tests.
// It satisfies the same repository contracts as the Postgres store,
// including atomic transactions and the one-live-match rule.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/internal/utils"
	"github.com/piresc/boleias/services/match"
)

type state struct {
	requests map[string]*models.RideRequest
	offers   map[string]*models.RideOffer
	matches  map[string]*models.Match
}

func newState() state {
	return state{
		requests: map[string]*models.RideRequest{},
		offers:   map[string]*models.RideOffer{},
		matches:  map[string]*models.Match{},
	}
}

func (s state) clone() state {
	c := state{
		requests: make(map[string]*models.RideRequest, len(s.requests)),
		offers:   make(map[string]*models.RideOffer, len(s.offers)),
		matches:  make(map[string]*models.Match, len(s.matches)),
	}
	for id, r := range s.requests {
		c.requests[id] = r.Clone()
	}
	for id, o := range s.offers {
		c.offers[id] = o.Clone()
	}
	for id, m := range s.matches {
		c.matches[id] = m.Clone()
	}
	return c
}

// Store keeps every entity in maps guarded by one lock.
// Transactions run on a copy of the state that replaces it on success.
type Store struct {
	mu    sync.RWMutex
	state state

	auditMu sync.Mutex
	audit   []models.AuditLogEntry

	faultMu sync.Mutex
	faults  map[string]error
}

// New creates an empty store
func New() *Store {
	return &Store{state: newState(), faults: map[string]error{}}
}

// Operation names accepted by FailOn
const (
	OpCreateMatch         = "CreateMatch"
	OpUpdateMatch         = "UpdateMatch"
	OpUpdateRequestStatus = "UpdateRequestStatus"
	OpUpdateOfferStatus   = "UpdateOfferStatus"
	OpAppendAuditLog      = "AppendAuditLog"
)

// FailOn makes every later call of op return err. A nil err clears the fault.
func (s *Store) FailOn(op string, err error) {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	if err == nil {
		delete(s.faults, op)
		return
	}
	s.faults[op] = err
}

func (s *Store) fault(op string) error {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	return s.faults[op]
}

func (s *Store) read(ctx context.Context, fn func(st state) error) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Transient("memstore read", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.state)
}

func (s *Store) write(ctx context.Context, fn func(st state) error) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Transient("memstore write", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// WithinTx runs fn against a private copy of the state and publishes it only when fn succeeds
func (s *Store) WithinTx(ctx context.Context, fn func(tx match.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Transient("memstore begin", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, state: s.state.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return apperrors.Transient("memstore commit", err)
	}
	s.state = tx.state
	return nil
}

// Requests

func (s *Store) CreateRequest(ctx context.Context, r *models.RideRequest) error {
	return s.write(ctx, func(st state) error {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		for _, existing := range st.requests {
			if existing.EditToken == r.EditToken {
				return apperrors.Conflict(models.EntityRequest, r.ID, "edit token already in use")
			}
		}
		st.requests[r.ID] = r.Clone()
		return nil
	})
}

func (s *Store) GetRequest(ctx context.Context, id string) (*models.RideRequest, error) {
	var out *models.RideRequest
	err := s.read(ctx, func(st state) error {
		r, ok := st.requests[id]
		if !ok {
			return apperrors.NotFound(models.EntityRequest, id)
		}
		out = r.Clone()
		return nil
	})
	return out, err
}

func (s *Store) GetRequestByToken(ctx context.Context, token string) (*models.RideRequest, error) {
	var out *models.RideRequest
	err := s.read(ctx, func(st state) error {
		for _, r := range st.requests {
			if r.EditToken == token {
				out = r.Clone()
				return nil
			}
		}
		return apperrors.NotFound(models.EntityRequest, "for token")
	})
	return out, err
}

// UpdateRequestDetails rewrites the owner-editable fields while the status is still expected
func (s *Store) UpdateRequestDetails(ctx context.Context, r *models.RideRequest, expected models.RequestStatus) error {
	return s.write(ctx, func(st state) error {
		cur, ok := st.requests[r.ID]
		if !ok {
			return apperrors.NotFound(models.EntityRequest, r.ID)
		}
		if cur.Status != expected {
			return apperrors.Conflict(models.EntityRequest, r.ID, "status changed to "+string(cur.Status))
		}
		next := r.Clone()
		next.Status = cur.Status
		next.MatchedOfferID = cur.MatchedOfferID
		next.EditToken = cur.EditToken
		next.CreatedAt = cur.CreatedAt
		st.requests[r.ID] = next
		return nil
	})
}

func (s *Store) ListRequests(ctx context.Context, filter models.RequestFilter) ([]*models.RideRequest, error) {
	var out []*models.RideRequest
	cells := utils.GeohashPrefixes(filter.GeohashPrefix, filter.Near)
	err := s.read(ctx, func(st state) error {
		for _, r := range st.requests {
			if filter.Status != "" && r.Status != filter.Status {
				continue
			}
			if len(cells) > 0 && !hasAnyPrefix(r.PickupGeohash, cells) {
				continue
			}
			if filter.Search != "" && !utils.AnyContainsFold(filter.Search,
				r.RequesterName, r.RequesterPhone, r.PickupLocationText, r.DropoffLocationText, r.Notes) {
				continue
			}
			out = append(out, r.Clone())
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return newer(out[i].CreatedAt.UnixNano(), out[j].CreatedAt.UnixNano(), out[i].ID, out[j].ID) })
	return out, err
}

// Offers

func (s *Store) CreateOffer(ctx context.Context, o *models.RideOffer) error {
	return s.write(ctx, func(st state) error {
		if o.ID == "" {
			o.ID = uuid.NewString()
		}
		for _, existing := range st.offers {
			if existing.EditToken == o.EditToken {
				return apperrors.Conflict(models.EntityOffer, o.ID, "edit token already in use")
			}
		}
		st.offers[o.ID] = o.Clone()
		return nil
	})
}

func (s *Store) GetOffer(ctx context.Context, id string) (*models.RideOffer, error) {
	var out *models.RideOffer
	err := s.read(ctx, func(st state) error {
		o, ok := st.offers[id]
		if !ok {
			return apperrors.NotFound(models.EntityOffer, id)
		}
		out = o.Clone()
		return nil
	})
	return out, err
}

func (s *Store) GetOfferByToken(ctx context.Context, token string) (*models.RideOffer, error) {
	var out *models.RideOffer
	err := s.read(ctx, func(st state) error {
		for _, o := range st.offers {
			if o.EditToken == token {
				out = o.Clone()
				return nil
			}
		}
		return apperrors.NotFound(models.EntityOffer, "for token")
	})
	return out, err
}

// UpdateOfferDetails rewrites the owner-editable fields while the status is still expected
func (s *Store) UpdateOfferDetails(ctx context.Context, o *models.RideOffer, expected models.OfferStatus) error {
	return s.write(ctx, func(st state) error {
		cur, ok := st.offers[o.ID]
		if !ok {
			return apperrors.NotFound(models.EntityOffer, o.ID)
		}
		if cur.Status != expected {
			return apperrors.Conflict(models.EntityOffer, o.ID, "status changed to "+string(cur.Status))
		}
		next := o.Clone()
		next.Status = cur.Status
		next.EditToken = cur.EditToken
		next.CreatedAt = cur.CreatedAt
		st.offers[o.ID] = next
		return nil
	})
}

func (s *Store) ListOffers(ctx context.Context, filter models.OfferFilter) ([]*models.RideOffer, error) {
	var out []*models.RideOffer
	err := s.read(ctx, func(st state) error {
		for _, o := range st.offers {
			if filter.Status != "" && o.Status != filter.Status {
				continue
			}
			if filter.Search != "" && !utils.AnyContainsFold(filter.Search,
				o.DriverName, o.DriverPhone, o.DepartureAreaText, o.Notes) {
				continue
			}
			out = append(out, o.Clone())
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return newer(out[i].CreatedAt.UnixNano(), out[j].CreatedAt.UnixNano(), out[i].ID, out[j].ID) })
	return out, err
}

// ListAvailableOffers returns AVAILABLE offers passing the coarse seat and window filter
func (s *Store) ListAvailableOffers(ctx context.Context, filter models.AvailableOfferFilter) ([]*models.RideOffer, error) {
	var out []*models.RideOffer
	err := s.read(ctx, func(st state) error {
		for _, o := range st.offers {
			if o.Status != models.OfferStatusAvailable {
				continue
			}
			if filter.MinSeats > 0 && o.SeatsAvailable < filter.MinSeats {
				continue
			}
			if !filter.WindowEnd.IsZero() && o.TimeWindowStart.After(filter.WindowEnd) {
				continue
			}
			if !filter.WindowStart.IsZero() && o.TimeWindowEnd.Before(filter.WindowStart) {
				continue
			}
			out = append(out, o.Clone())
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return newer(out[i].CreatedAt.UnixNano(), out[j].CreatedAt.UnixNano(), out[i].ID, out[j].ID) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, err
}

// Matches

func (s *Store) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	var out *models.Match
	err := s.read(ctx, func(st state) error {
		m, ok := st.matches[id]
		if !ok {
			return apperrors.NotFound(models.EntityMatch, id)
		}
		out = m.Clone()
		return nil
	})
	return out, err
}

func (s *Store) ListMatches(ctx context.Context, filter models.MatchFilter) ([]*models.Match, error) {
	var out []*models.Match
	err := s.read(ctx, func(st state) error {
		for _, m := range st.matches {
			if filter.Status != "" && m.Status != filter.Status {
				continue
			}
			if filter.RequestID != "" && m.RequestID != filter.RequestID {
				continue
			}
			if filter.OfferID != "" && m.OfferID != filter.OfferID {
				continue
			}
			out = append(out, m.Clone())
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return newer(out[i].CreatedAt.UnixNano(), out[j].CreatedAt.UnixNano(), out[i].ID, out[j].ID) })
	return out, err
}

// Audit log

// AppendAuditLog stores a copy of entry
func (s *Store) AppendAuditLog(ctx context.Context, entry *models.AuditLogEntry) error {
	if err := s.fault(OpAppendAuditLog); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return apperrors.Transient("memstore audit", err)
	}
	s.auditMu.Lock()
	defer s.auditMu.Unlock()
	e := *entry
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.audit = append(s.audit, e)
	return nil
}

// AuditLog returns the entries appended so far, oldest first
func (s *Store) AuditLog() []models.AuditLogEntry {
	s.auditMu.Lock()
	defer s.auditMu.Unlock()
	return append([]models.AuditLogEntry(nil), s.audit...)
}

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func newer(a, b int64, idA, idB string) bool {
	if a != b {
		return a > b
	}
	return idA < idB
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
