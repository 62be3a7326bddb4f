// Package store holds the process-wide reactive state of the storefront:
// favorites, cart, address and profile photo, plus the observer list that
// re-render signals flow through. Mutators update state synchronously under
// one lock and then notify; observers re-read through the getters.
//
// The profile photo is the only store field backed by the durable key-value
// service. Its in-memory value is updated optimistically before the
// persisted write, and a failed write is logged but never rolled back.
package store

import (
	"context"
	"log/slog"
	"sync"

	"barista/internal/domain/entity"
	"barista/internal/domain/repository"
)

// Store is the reactive store core. It is constructed once at application
// root and passed to consumers; there are no package-level globals.
type Store struct {
	observers *Observers
	photos    repository.ProfilePhotoRepository
	logger    *slog.Logger

	mu        sync.Mutex
	catalog   []entity.Coffee
	favorites map[string]struct{}
	cart      []entity.CartLine
	address   entity.Address

	photo       string
	photoLoaded bool
	photoOnce   sync.Once
}

// New creates a Store with the default catalog and address.
func New(photos repository.ProfilePhotoRepository, logger *slog.Logger) *Store {
	return &Store{
		observers: NewObservers(),
		photos:    photos,
		logger:    logger,
		catalog:   DefaultCatalog(),
		favorites: make(map[string]struct{}),
		address: entity.Address{
			Town:  "New city town",
			Phone: "+919100000000000",
		},
	}
}

// Subscribe registers an observer to run after every mutation and returns
// its cancel function.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	return s.observers.Subscribe(fn)
}

// Catalog returns the full reference catalog in its fixed order.
func (s *Store) Catalog() []entity.Coffee {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Coffee, len(s.catalog))
	copy(out, s.catalog)

	return out
}

// IsFavorite reports whether the catalog item is marked as a favorite.
func (s *Store) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.favorites[id]

	return ok
}

// ToggleFavorite flips favorite membership for id: removed if present,
// added if absent. Calling it twice restores the original set.
func (s *Store) ToggleFavorite(id string) {
	s.mu.Lock()
	if _, ok := s.favorites[id]; ok {
		delete(s.favorites, id)
	} else {
		s.favorites[id] = struct{}{}
	}
	s.mu.Unlock()

	s.observers.Notify()
}

// Favorites returns the favorite catalog items in catalog order, not in the
// order they were toggled.
func (s *Store) Favorites() []entity.Coffee {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.Coffee
	for _, item := range s.catalog {
		if _, ok := s.favorites[item.ID]; ok {
			out = append(out, item)
		}
	}

	return out
}

// AddToCart adds quantity units of (item, size) to the cart. An existing
// line for the pair accumulates; otherwise a new line is appended at the
// end. Quantities below 1 are treated as 1.
func (s *Store) AddToCart(item entity.Coffee, size entity.Size, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	if i := s.lineIndex(item.ID, size); i >= 0 {
		s.cart[i].Quantity += quantity
	} else {
		s.cart = append(s.cart, entity.CartLine{Coffee: item, Size: size, Quantity: quantity})
	}
	s.mu.Unlock()

	s.observers.Notify()
}

// RemoveFromCart deletes the (id, size) line; no-op if absent.
func (s *Store) RemoveFromCart(id string, size entity.Size) {
	s.mu.Lock()
	if i := s.lineIndex(id, size); i >= 0 {
		s.cart = append(s.cart[:i], s.cart[i+1:]...)
	}
	s.mu.Unlock()

	s.observers.Notify()
}

// UpdateCartQuantity adds delta to the (id, size) line's quantity. A result
// of zero or below deletes the line; no-op if no line matches.
func (s *Store) UpdateCartQuantity(id string, size entity.Size, delta int) {
	s.mu.Lock()
	if i := s.lineIndex(id, size); i >= 0 {
		if s.cart[i].Quantity+delta > 0 {
			s.cart[i].Quantity += delta
		} else {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
		}
	}
	s.mu.Unlock()

	s.observers.Notify()
}

// Cart returns a copy of the cart lines in insertion order.
func (s *Store) Cart() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.CartLine, len(s.cart))
	copy(out, s.cart)

	return out
}

// CartTotal sums unit price times quantity over all lines. It is computed
// fresh on every call, never cached.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, line := range s.cart {
		total += line.Subtotal()
	}

	return total
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()

	s.observers.Notify()
}

// Address returns the current address record.
func (s *Store) Address() entity.Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.address
}

// UpdateAddress shallow-merges the patch into the address record: nil
// fields keep their prior value.
func (s *Store) UpdateAddress(patch entity.AddressPatch) {
	s.mu.Lock()
	if patch.Town != nil {
		s.address.Town = *patch.Town
	}
	if patch.Phone != nil {
		s.address.Phone = *patch.Phone
	}
	s.mu.Unlock()

	s.observers.Notify()
}

// ProfilePhoto returns the profile photo URI, or "" when none is set. The
// first access triggers a one-time load of the persisted value; concurrent
// first accesses share the same load.
func (s *Store) ProfilePhoto(ctx context.Context) string {
	s.loadPhotoOnce(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.photo
}

// SetProfilePhoto updates the in-memory photo synchronously, then persists
// it: a non-empty URI is written, an empty one deletes the persisted key.
// Observers are notified after the persistence attempt whether or not it
// succeeded; the in-memory value is never rolled back. The persistence
// error is returned for callers that want to surface it.
func (s *Store) SetProfilePhoto(ctx context.Context, uri string) error {
	s.mu.Lock()
	s.photo = uri
	// A set supersedes any pending first load.
	s.photoLoaded = true
	s.mu.Unlock()

	defer s.observers.Notify()

	var err error
	if uri != "" {
		err = s.photos.Save(ctx, uri)
	} else {
		err = s.photos.Clear(ctx)
	}
	if err != nil {
		s.logger.Warn("Profile photo persistence failed", "error", err)
	}

	return err
}

// lineIndex returns the cart index of the (id, size) line, or -1.
// Callers must hold s.mu.
func (s *Store) lineIndex(id string, size entity.Size) int {
	for i, line := range s.cart {
		if line.Coffee.ID == id && line.Size == size {
			return i
		}
	}

	return -1
}

func (s *Store) loadPhotoOnce(ctx context.Context) {
	s.photoOnce.Do(func() {
		uri, err := s.photos.Load(ctx)
		if err != nil {
			// Treated as absent; the load is not retried.
			s.logger.Warn("Profile photo load failed", "error", err)

			return
		}

		s.mu.Lock()
		notify := false
		if !s.photoLoaded {
			s.photo = uri
			s.photoLoaded = true
			notify = true
		}
		s.mu.Unlock()

		if notify {
			s.observers.Notify()
		}
	})
}
