// Package view holds the storefront page view-model and renders it.
//
// The ui package mutates a Page; renderers turn it into HTML (web front end)
// or terminal text (CLI). All user and server supplied strings are escaped by
// html/template here and nowhere else.
package view

import "github.com/dmitrijs2005/storefront/internal/client/models"

type Tab string

const (
	TabProducts Tab = "products"
	TabCart     Tab = "cart"
	TabOrders   Tab = "orders"
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabProducts, TabCart, TabOrders}

// ParseTab maps a tab name to a Tab.
func ParseTab(name string) (Tab, bool) {
	for _, t := range Tabs {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}

func (t Tab) Label() string {
	switch t {
	case TabProducts:
		return "Products"
	case TabCart:
		return "Cart"
	case TabOrders:
		return "Orders"
	}
	return string(t)
}

// Page is everything a front end needs to draw the current screen.
type Page struct {
	State string
	InApp bool
	// Alert is a one-shot notice outside any panel.
	Alert string
	Auth  AuthView
	App   AppView
}

type AuthView struct {
	ShowSignup     bool
	LoginUsername  string
	LoginMessage   string
	SignupUsername string
	SignupMessage  string
}

type AppView struct {
	Welcome   string
	ActiveTab Tab
	Products  ProductsPanel
	Cart      CartPanel
	Orders    OrdersPanel
}

type TabLink struct {
	Tab    Tab
	Active bool
}

func (a AppView) TabLinks() []TabLink {
	links := make([]TabLink, 0, len(Tabs))
	for _, t := range Tabs {
		links = append(links, TabLink{Tab: t, Active: t == a.ActiveTab})
	}
	return links
}

// Panel is the state shared by every tab. At most one of Loading, Error
// and Empty is set; when none is, the panel shows its content. Message is
// the panel's inline message slot.
type Panel struct {
	Loading string
	Error   string
	Empty   string
	Message string
}

// Reset clears everything but the message slot.
func (p *Panel) Reset() {
	p.Loading, p.Error, p.Empty = "", "", ""
}

type ProductsPanel struct {
	Panel
	Items []models.Product
	// Detail, when set, replaces the list with a single product view.
	Detail *models.Product
}

type CartPanel struct {
	Panel
	Cart *models.Cart
}

type OrdersPanel struct {
	Panel
	Items  []models.Order
	Detail OrderDetail
}

// OrderDetail is the sub-region under the order list.
type OrderDetail struct {
	Loading string
	Error   string
	Order   *models.Order
}
