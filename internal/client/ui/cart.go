package ui

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/view"
	"github.com/dmitrijs2005/storefront/internal/common"
)

func (s *Shell) LoadCart(ctx context.Context) error {
	if !s.page.InApp {
		return common.ErrNotInApp
	}
	s.page.Alert = ""
	s.loadCart(ctx)
	return nil
}

func (s *Shell) loadCart(ctx context.Context) {
	c := &s.page.App.Cart
	c.Cart, c.Message = nil, ""
	c.Reset()

	if !s.session.IsLoggedIn(ctx) {
		c.Error = msgLoginToViewCart
		return
	}
	s.setLoading(&c.Panel, msgLoadingCart)

	cart, err := s.api.Cart(ctx)
	c.Loading = ""
	if err != nil {
		if s.expireSession(ctx, err) {
			return
		}
		c.Error = failureText(err, msgLoadCartFailed)
		return
	}
	if cart == nil || len(cart.Items) == 0 {
		c.Empty = msgCartEmpty
		return
	}
	c.Cart = cart
}

// UpdateCartItem sets an item's quantity from raw user input, coerced with
// ParseQuantity, and reloads the cart on success.
func (s *Shell) UpdateCartItem(ctx context.Context, itemID int64, quantityInput string) error {
	if !s.page.InApp {
		return common.ErrNotInApp
	}
	s.page.Alert = ""

	err := s.api.UpdateCartItem(ctx, itemID, ParseQuantity(quantityInput))
	s.afterCartMutation(ctx, err, msgUpdateItemFailed)
	return nil
}

func (s *Shell) RemoveCartItem(ctx context.Context, itemID int64) error {
	if !s.page.InApp {
		return common.ErrNotInApp
	}
	s.page.Alert = ""

	err := s.api.RemoveCartItem(ctx, itemID)
	s.afterCartMutation(ctx, err, msgRemoveItemFailed)
	return nil
}

// PlaceOrder turns the cart into an order, then reloads the cart and shows
// the orders tab.
func (s *Shell) PlaceOrder(ctx context.Context) error {
	if !s.page.InApp {
		return common.ErrNotInApp
	}
	s.page.Alert = ""

	err := s.api.PlaceOrder(ctx)
	s.afterCartMutation(ctx, err, msgPlaceOrderFailed)
	if err == nil && s.page.InApp {
		s.activate(ctx, view.TabOrders)
	}
	return nil
}

func (s *Shell) afterCartMutation(ctx context.Context, err error, fallback string) {
	if err == nil {
		s.loadCart(ctx)
		return
	}
	if s.expireSession(ctx, err) {
		return
	}
	s.page.App.Cart.Message = failureText(err, fallback)
}
