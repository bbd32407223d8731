package cart

import (
	"foodcart/internal/domain"
	"foodcart/internal/storage"

	"go.uber.org/zap"
)

// Listener receives render notifications from the sync pass. A nil line on
// LineChanged means the line was pruned and its control cell should revert
// to the add affordance.
type Listener interface {
	LineChanged(id string, line *domain.CartLine)
	CartSynced(cart domain.Cart)
}

// Store owns the authoritative cart for the session. Every read of cart
// state goes through it; the persisted copy is only ever touched here.
type Store struct {
	storage  storage.Store
	listener Listener
	logger   *zap.Logger
	cart     domain.Cart
}

func NewStore(st storage.Store, logger *zap.Logger) *Store {
	return &Store{
		storage: st,
		logger:  logger,
		cart:    domain.NewCart(),
	}
}

func (s *Store) SetListener(l Listener) {
	s.listener = l
}

// Load replaces the in-memory cart with the persisted one. An absent or
// unparsable persisted cart loads as empty; the caller never sees an error.
func (s *Store) Load() {
	s.cart = domain.NewCart()

	raw, ok, err := s.storage.Get(storage.KeyCart)
	if err != nil {
		s.logger.Warn("reading persisted cart failed, starting empty", zap.Error(err))
		return
	}
	if !ok {
		return
	}

	cart, err := domain.DeserializeCart(raw)
	if err != nil {
		s.logger.Warn("persisted cart is malformed, starting empty", zap.Error(err))
		return
	}
	s.cart = cart
}

// Cart returns a snapshot. Mutations go through the store's operations, not
// the snapshot.
func (s *Store) Cart() domain.Cart {
	return s.cart.Clone()
}

// Line reports the current line for an item id, if any.
func (s *Store) Line(id string) (domain.CartLine, bool) {
	line, ok := s.cart[id]
	if !ok {
		return domain.CartLine{}, false
	}
	return *line, true
}

func (s *Store) IsEmpty() bool {
	return s.cart.IsEmpty()
}

func (s *Store) Total() int {
	return s.cart.Total()
}

// Add inserts a new line with quantity 1, or bumps the quantity when the
// item is already in the cart. Name and price are captured as rendered.
func (s *Store) Add(id, name string, price int) {
	if line, ok := s.cart[id]; ok {
		line.Quantity++
	} else {
		s.cart[id] = &domain.CartLine{ID: id, Name: name, Price: price, Quantity: 1}
	}
	s.Sync()
}

func (s *Store) Increment(id string) {
	line, ok := s.cart[id]
	if !ok {
		return
	}
	line.Quantity++
	s.Sync()
}

// Decrement lowers the quantity, flooring at zero. The zero line stays in
// the map until Sync prunes it so removal has a single code path.
func (s *Store) Decrement(id string) {
	line, ok := s.cart[id]
	if !ok {
		return
	}
	if line.Quantity > 0 {
		line.Quantity--
	}
	s.Sync()
}

// RemoveAll forces an item's quantity to zero, deferring to the same prune
// rule as Decrement.
func (s *Store) RemoveAll(id string) {
	line, ok := s.cart[id]
	if !ok {
		return
	}
	line.Quantity = 0
	s.Sync()
}

// Clear empties the cart and removes only the cart key from storage. Other
// persisted keys, the auth token included, survive.
func (s *Store) Clear() {
	for id := range s.cart {
		s.notifyLine(id, nil)
	}
	s.cart = domain.NewCart()

	if err := s.storage.Delete(storage.KeyCart); err != nil {
		s.logger.Warn("deleting persisted cart failed", zap.Error(err))
	}
	s.notifySynced()
}

// Sync is the one entry point run after every mutation: prune lines whose
// quantity is below one, refresh each line's control cell, persist, then
// republish the total and the sidebar.
func (s *Store) Sync() {
	for id, line := range s.cart {
		if line.Quantity < 1 {
			delete(s.cart, id)
			s.notifyLine(id, nil)
			continue
		}
		s.notifyLine(id, line)
	}

	s.persist()
	s.notifySynced()
}

func (s *Store) persist() {
	raw, err := s.cart.Serialize()
	if err != nil {
		s.logger.Error("serializing cart failed", zap.Error(err))
		return
	}
	if err := s.storage.Set(storage.KeyCart, raw); err != nil {
		s.logger.Warn("persisting cart failed", zap.Error(err))
	}
}

func (s *Store) notifyLine(id string, line *domain.CartLine) {
	if s.listener == nil {
		return
	}
	if line == nil {
		s.listener.LineChanged(id, nil)
		return
	}
	copied := *line
	s.listener.LineChanged(id, &copied)
}

func (s *Store) notifySynced() {
	if s.listener == nil {
		return
	}
	s.listener.CartSynced(s.cart.Clone())
}
