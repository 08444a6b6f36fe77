package services

import (
	"shopd/internal/catalog"
	"shopd/internal/domain"
	"shopd/internal/repos"
)

// CartService owns all cart mutations. Every operation loads the session's
// cart, applies the change, and writes the whole cart back through the store.
type CartService struct {
	Store   repos.CartStore
	Catalog *catalog.Catalog
}

func NewCartService(store repos.CartStore, cat *catalog.Catalog) *CartService {
	return &CartService{Store: store, Catalog: cat}
}

func (s *CartService) Get(sessionID string) ([]domain.CartLine, error) {
	return s.Store.Get(sessionID)
}

// Add puts qty units of a product into the cart. An existing line absorbs the
// delta but never drops below 1; once added, an item leaves the cart only via
// SetQuantity(0), Remove, or Clear. A new line's quantity is floored at 1.
func (s *CartService) Add(sessionID, productID string, qty int64) ([]domain.CartLine, error) {
	p, err := s.Catalog.Find(productID)
	if err != nil {
		return nil, domain.ErrInvalidProduct
	}
	lines, err := s.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Qty += qty
			if lines[i].Qty < 1 {
				lines[i].Qty = 1
			}
			found = true
			break
		}
	}
	if !found {
		if qty < 1 {
			qty = 1
		}
		lines = append(lines, domain.NewCartLine(p, qty))
	}
	if err := s.Store.Save(sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// SetQuantity pins a line to an absolute quantity; zero (or less) removes it.
func (s *CartService) SetQuantity(sessionID, productID string, qty int64) ([]domain.CartLine, error) {
	lines, err := s.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range lines {
		if lines[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrItemNotFound
	}
	if qty < 0 {
		qty = 0
	}
	if qty == 0 {
		lines = append(lines[:idx], lines[idx+1:]...)
	} else {
		lines[idx].Qty = qty
	}
	if err := s.Store.Save(sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Remove drops a line if present. Removing an absent item is a no-op, not an
// error; unlike SetQuantity, remove is naturally idempotent.
func (s *CartService) Remove(sessionID, productID string) ([]domain.CartLine, error) {
	lines, err := s.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	kept := lines[:0]
	for _, l := range lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	if err := s.Store.Save(sessionID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *CartService) Clear(sessionID string) error {
	return s.Store.Clear(sessionID)
}
