package view

import (
	"fmt"
	"html/template"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// Action is a user command as drawn by a renderer: a form button on the web,
// a command hint in the terminal.
type Action struct {
	Label   string
	Path    string
	Command string
	// Field names an optional quantity input submitted with the form.
	Field string
	Value int
}

var funcs = template.FuncMap{
	"amount": models.Amount,
	"tabAction": func(t Tab) Action {
		return Action{Label: t.Label(), Path: "/tabs/" + string(t), Command: string(t)}
	},
	"detailsAction": func(id int64) Action {
		return Action{Label: "Details", Path: fmt.Sprintf("/products/%d", id), Command: fmt.Sprintf("details %d", id)}
	},
	"addAction": func(id int64) Action {
		return Action{Label: "Add to Cart", Path: fmt.Sprintf("/products/%d/cart", id), Command: fmt.Sprintf("add %d", id)}
	},
	"addQtyAction": func(id int64) Action {
		return Action{
			Label: "Add to Cart", Path: fmt.Sprintf("/products/%d/cart", id),
			Command: fmt.Sprintf("add %d <qty>", id), Field: "quantity", Value: 1,
		}
	},
	"backAction": func() Action {
		return Action{Label: "Back to Products", Path: "/tabs/products", Command: "products"}
	},
	"updateAction": func(item models.CartItem) Action {
		return Action{
			Label: "Update", Path: fmt.Sprintf("/cart/items/%d", item.ID),
			Command: fmt.Sprintf("update %d <qty>", item.ID), Field: "quantity", Value: item.Quantity,
		}
	},
	"removeAction": func(id int64) Action {
		return Action{Label: "Remove", Path: fmt.Sprintf("/cart/items/%d/remove", id), Command: fmt.Sprintf("remove %d", id)}
	},
	"orderAction": func() Action {
		return Action{Label: "Place Order", Path: "/orders", Command: "order"}
	},
	"orderDetailsAction": func(id int64) Action {
		return Action{Label: "Details", Path: fmt.Sprintf("/orders/%d", id), Command: fmt.Sprintf("order-details %d", id)}
	},
	"logoutAction": func() Action {
		return Action{Label: "Logout", Path: "/auth/logout", Command: "logout"}
	},
	"showSignupAction": func() Action {
		return Action{Label: "Don't have an account? Sign up", Path: "/auth/show-signup", Command: "show-signup"}
	},
	"showLoginAction": func() Action {
		return Action{Label: "Already have an account? Login", Path: "/auth/show-login", Command: "show-login"}
	},
}
