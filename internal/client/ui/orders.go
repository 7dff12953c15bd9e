package ui

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/view"
	"github.com/dmitrijs2005/storefront/internal/common"
)

func (s *Shell) LoadOrders(ctx context.Context) error {
	if !s.page.InApp {
		return common.ErrNotInApp
	}
	s.page.Alert = ""
	s.loadOrders(ctx)
	return nil
}

func (s *Shell) loadOrders(ctx context.Context) {
	o := &s.page.App.Orders
	o.Items, o.Detail, o.Message = nil, view.OrderDetail{}, ""
	o.Reset()

	if !s.session.IsLoggedIn(ctx) {
		o.Error = msgLoginToViewOrders
		return
	}
	s.setLoading(&o.Panel, msgLoadingOrders)

	orders, err := s.api.Orders(ctx)
	o.Loading = ""
	if err != nil {
		if s.expireSession(ctx, err) {
			return
		}
		o.Error = failureText(err, msgLoadOrdersFailed)
		return
	}
	if len(orders) == 0 {
		o.Empty = msgNoOrders
		return
	}
	o.Items = orders
}

// OrderDetails fills the detail region below the order list. When the
// orders tab is not active it is activated (and loaded) first.
func (s *Shell) OrderDetails(ctx context.Context, id int64) error {
	if !s.page.InApp {
		return common.ErrNotInApp
	}
	s.page.Alert = ""

	if s.page.App.ActiveTab != view.TabOrders {
		s.activate(ctx, view.TabOrders)
		if !s.page.InApp {
			return nil
		}
	}

	d := &s.page.App.Orders.Detail
	*d = view.OrderDetail{Loading: msgLoadingOrder}
	s.progress(msgLoadingOrder)

	order, err := s.api.Order(ctx, id)
	d.Loading = ""
	if err != nil {
		if s.expireSession(ctx, err) {
			return nil
		}
		d.Error = failureText(err, msgLoadOrderFailed)
		return nil
	}
	d.Order = order
	return nil
}
