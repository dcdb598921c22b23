// Package memstore holds the process-wide facility catalog and booking ledger.
//
// A Store is created once at startup and handed to the repositories. All
// access goes through View or Update, which run the callback under a single
// lock, so a multi-step change (look up facility, append booking, bump queue
// count) is applied as a unit.
package memstore

import (
	"errors"
	"sync"

	"washmap-api/internal/domain/entity"
)

// ErrReadOnly is returned when a write is attempted inside View
var ErrReadOnly = errors.New("memstore: write in read-only transaction")

type Store struct {
	mu         sync.RWMutex
	facilities []entity.Facility
	bookings   []entity.Booking
}

// New creates a store seeded with a copy of the given facilities
func New(seed []entity.Facility) *Store {
	facilities := make([]entity.Facility, len(seed))
	for i, f := range seed {
		facilities[i] = f.Clone()
	}
	return &Store{facilities: facilities}
}

// Tx is a handle valid only for the duration of a View or Update callback
type Tx struct {
	store    *Store
	writable bool
}

// View runs fn under the read lock
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{store: s})
}

// Update runs fn under the write lock. Changes made before fn returns an
// error are not rolled back, so callers validate before mutating.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{store: s, writable: true})
}

// Facilities returns copies of all facilities in catalog order
func (tx *Tx) Facilities() []entity.Facility {
	out := make([]entity.Facility, len(tx.store.facilities))
	for i, f := range tx.store.facilities {
		out[i] = f.Clone()
	}
	return out
}

// Facility returns a copy of the facility with the given id
func (tx *Tx) Facility(id string) (entity.Facility, bool) {
	i := tx.facilityIndex(id)
	if i < 0 {
		return entity.Facility{}, false
	}
	return tx.store.facilities[i].Clone(), true
}

// ModifyFacility applies fn to the stored facility in place.
// It reports false if no facility has the id.
func (tx *Tx) ModifyFacility(id string, fn func(f *entity.Facility)) (bool, error) {
	if !tx.writable {
		return false, ErrReadOnly
	}
	i := tx.facilityIndex(id)
	if i < 0 {
		return false, nil
	}
	fn(&tx.store.facilities[i])
	return true, nil
}

// AppendBooking adds a booking to the end of the ledger
func (tx *Tx) AppendBooking(b entity.Booking) error {
	if !tx.writable {
		return ErrReadOnly
	}
	tx.store.bookings = append(tx.store.bookings, b)
	return nil
}

// Bookings returns the bookings matching keep, in creation order.
// A nil keep returns all bookings.
func (tx *Tx) Bookings(keep func(b *entity.Booking) bool) []entity.Booking {
	out := make([]entity.Booking, 0)
	for i := range tx.store.bookings {
		if keep == nil || keep(&tx.store.bookings[i]) {
			out = append(out, tx.store.bookings[i])
		}
	}
	return out
}

func (tx *Tx) facilityIndex(id string) int {
	for i := range tx.store.facilities {
		if tx.store.facilities[i].ID == id {
			return i
		}
	}
	return -1
}
