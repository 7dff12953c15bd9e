// Package models defines the storefront resources exchanged with the REST
// backend.
package models

import "encoding/json"

// Product is a catalog entry. Price is nil when the backend sends null.
type Product struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Price       *json.Number `json:"price"`
}

// CartItem is one line of a cart or of a placed order.
type CartItem struct {
	ID          int64        `json:"id"`
	ProductID   int64        `json:"productId"`
	ProductName string       `json:"productName"`
	Quantity    int          `json:"quantity"`
	Price       *json.Number `json:"price"`
}

type Cart struct {
	Items []CartItem   `json:"items"`
	Total *json.Number `json:"total"`
}

// Order status is free text owned by the backend.
type Order struct {
	ID     int64        `json:"id"`
	Status string       `json:"status"`
	Total  *json.Number `json:"total"`
	Items  []CartItem   `json:"items"`
}

// AuthResponse is the body of login and signup. Either field may be empty.
type AuthResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// LoginRequest carries the username in the email field; the backend
// authenticates by email.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddCartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// Amount renders a nullable price or total as the server sent it,
// or "N/A" when it is missing.
func Amount(n *json.Number) string {
	if n == nil || *n == "" {
		return "N/A"
	}
	return n.String()
}
