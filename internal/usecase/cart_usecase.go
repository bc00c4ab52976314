package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/furnishfusion/storefront/internal/domain/entity"
	"github.com/furnishfusion/storefront/internal/domain/repository"
	"github.com/furnishfusion/storefront/internal/infrastructure/storage"
	"github.com/furnishfusion/storefront/internal/planner"
)

// Cart update actions.
const (
	CartActionIncrease = "increase"
	CartActionDecrease = "decrease"
	CartActionRemove   = "remove"
)

// CartUseCase manages the session cart. Quantities live in the session;
// prices are always read live from the catalog so a price change shows
// up on the next view.
type CartUseCase struct {
	products repository.ProductRepository
	sessions *storage.SessionStore
}

func NewCartUseCase(products repository.ProductRepository, sessions *storage.SessionStore) *CartUseCase {
	return &CartUseCase{products: products, sessions: sessions}
}

// CartView is the rendered cart.
type CartView struct {
	Items []entity.CartItem `json:"cart_items"`
	Total float64           `json:"total"`
}

// Add puts one unit of the product into the cart, creating the line if
// needed.
func (uc *CartUseCase) Add(ctx context.Context, sess *entity.Session, productID int64) (*entity.Product, error) {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
	}
	uc.sessions.Update(sess.Token, func(s *entity.Session) {
		s.Cart[productID]++
	})
	return product, nil
}

// Update adjusts a cart line. Decreasing past one removes the line,
// same as remove.
func (uc *CartUseCase) Update(ctx context.Context, sess *entity.Session, productID int64, action string) error {
	switch action {
	case CartActionRemove:
		uc.sessions.Update(sess.Token, func(s *entity.Session) {
			delete(s.Cart, productID)
		})
	case CartActionDecrease:
		uc.sessions.Update(sess.Token, func(s *entity.Session) {
			if s.Cart[productID] > 1 {
				s.Cart[productID]--
			} else {
				delete(s.Cart, productID)
			}
		})
	case CartActionIncrease:
		uc.sessions.Update(sess.Token, func(s *entity.Session) {
			s.Cart[productID]++
		})
	default:
		return fmt.Errorf("%w: unknown cart action %q", ErrInvalidInput, action)
	}
	return nil
}

// View prices the cart. It re-reads a fresh snapshot from the session
// store so concurrent cart mutations on the same token are safe.
// Products that vanished from the catalog are silently dropped, matching
// the storefront's forgiving behavior.
func (uc *CartUseCase) View(ctx context.Context, sess *entity.Session) (*CartView, error) {
	view := &CartView{Items: []entity.CartItem{}}
	if sess == nil {
		return view, nil
	}
	current, ok := uc.sessions.Get(sess.Token)
	if !ok || len(current.Cart) == 0 {
		return view, nil
	}

	for productID, quantity := range current.Cart {
		product, err := uc.products.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}
		lineTotal := planner.Round2(product.Price * float64(quantity))
		view.Total += lineTotal
		view.Items = append(view.Items, entity.CartItem{
			ID:          product.ID,
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			ImageURL:    product.ImageURL,
			Quantity:    quantity,
			Total:       lineTotal,
		})
	}
	sort.Slice(view.Items, func(i, j int) bool { return view.Items[i].ID < view.Items[j].ID })
	view.Total = planner.Round2(view.Total)
	return view, nil
}

// Clear empties the cart after a successful checkout.
func (uc *CartUseCase) Clear(sess *entity.Session) {
	uc.sessions.Update(sess.Token, func(s *entity.Session) {
		s.Cart = make(map[int64]int)
	})
}
