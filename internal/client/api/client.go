package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// HeaderSource supplies per-request headers, typically the session's
// Authorization header.
type HeaderSource interface {
	AuthHeader(ctx context.Context) http.Header
}

type Client interface {
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Signup(ctx context.Context, username, password string) (*models.AuthResponse, error)

	// Products returns nil when the backend answers with anything but a
	// JSON array.
	Products(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id int64) (*models.Product, error)

	AddCartItem(ctx context.Context, productID int64, quantity int) error
	Cart(ctx context.Context) (*models.Cart, error)
	UpdateCartItem(ctx context.Context, itemID int64, quantity int) error
	RemoveCartItem(ctx context.Context, itemID int64) error

	PlaceOrder(ctx context.Context) error
	// Orders returns nil when the backend answers with anything but a
	// JSON array.
	Orders(ctx context.Context) ([]models.Order, error)
	Order(ctx context.Context, id int64) (*models.Order, error)
}
