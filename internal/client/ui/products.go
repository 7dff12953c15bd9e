package ui

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/view"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// LoadProducts reloads the product list. The endpoint is public; the bearer
// header is still sent when a token exists.
func (s *Shell) LoadProducts(ctx context.Context) error {
	if !s.page.InApp {
		return common.ErrNotInApp
	}
	s.page.Alert = ""
	s.loadProducts(ctx)
	return nil
}

func (s *Shell) loadProducts(ctx context.Context) {
	p := &s.page.App.Products
	p.Items, p.Detail, p.Message = nil, nil, ""
	s.setLoading(&p.Panel, msgLoadingProducts)

	items, err := s.api.Products(ctx)
	p.Loading = ""
	if err != nil {
		if s.expireSession(ctx, err) {
			return
		}
		p.Error = failureText(err, msgLoadProductsFailed)
		return
	}
	if len(items) == 0 {
		p.Empty = msgNoProducts
		return
	}
	p.Items = items
}

// ProductDetails replaces the product list with one product and a quantity
// selector.
func (s *Shell) ProductDetails(ctx context.Context, id int64) error {
	if !s.page.InApp {
		return common.ErrNotInApp
	}
	s.page.Alert = ""
	s.page.App.ActiveTab = view.TabProducts

	p := &s.page.App.Products
	p.Items, p.Detail, p.Message = nil, nil, ""
	s.setLoading(&p.Panel, msgLoadingProduct)

	product, err := s.api.Product(ctx, id)
	p.Loading = ""
	if err != nil {
		if s.expireSession(ctx, err) {
			return nil
		}
		p.Error = failureText(err, msgLoadProductFailed)
		return nil
	}
	p.Detail = product
	return nil
}

// AddToCart adds quantity units of a product. When that product's details
// are on screen the outcome goes to the detail message slot; otherwise it is
// raised as an alert and, on success, the list is reloaded. Without a token
// it only prompts for login, from either view.
func (s *Shell) AddToCart(ctx context.Context, productID int64, quantity int) error {
	if !s.session.IsLoggedIn(ctx) {
		s.page.Alert = msgLoginToAdd
		return nil
	}
	if !s.page.InApp {
		return common.ErrNotInApp
	}
	s.page.Alert = ""
	if quantity < 1 {
		quantity = 1
	}

	p := &s.page.App.Products
	fromDetail := s.page.App.ActiveTab == view.TabProducts && p.Detail != nil && p.Detail.ID == productID

	err := s.api.AddCartItem(ctx, productID, quantity)
	if err != nil && s.expireSession(ctx, err) {
		return nil
	}

	switch {
	case fromDetail && err == nil:
		p.Message = msgAddedToCart
	case fromDetail:
		p.Message = failureText(err, msgAddToCartFailed)
	case err == nil:
		s.activate(ctx, view.TabProducts)
		if s.page.InApp {
			s.page.Alert = msgAddedToCart
		}
	default:
		s.page.Alert = failureText(err, msgAddToCartFailed)
	}
	return nil
}
