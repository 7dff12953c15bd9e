package ui

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// fakeAPI records every call by name and answers from its fields.
type fakeAPI struct {
	calls []string

	loginResp  *models.AuthResponse
	loginErr   error
	signupResp *models.AuthResponse
	signupErr  error
	gotUser    string
	gotPass    string

	products     []models.Product
	productsErr  error
	product      *models.Product
	productErr   error
	gotProductID int64

	addErr    error
	gotAddID  int64
	gotAddQty int

	cart       *models.Cart
	cartErr    error
	updateErr  error
	gotItemID  int64
	gotQty     int
	removeErr  error
	placeErr   error
	orders     []models.Order
	ordersErr  error
	order      *models.Order
	orderErr   error
	gotOrderID int64

	// onCall runs inside every call, after it is recorded.
	onCall func(name string)
}

func (f *fakeAPI) record(name string) {
	f.calls = append(f.calls, name)
	if f.onCall != nil {
		f.onCall(name)
	}
}

func (f *fakeAPI) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (*models.AuthResponse, error) {
	f.record("Login")
	f.gotUser, f.gotPass = username, password
	return f.loginResp, f.loginErr
}

func (f *fakeAPI) Signup(_ context.Context, username, password string) (*models.AuthResponse, error) {
	f.record("Signup")
	f.gotUser, f.gotPass = username, password
	return f.signupResp, f.signupErr
}

func (f *fakeAPI) Products(context.Context) ([]models.Product, error) {
	f.record("Products")
	return f.products, f.productsErr
}

func (f *fakeAPI) Product(_ context.Context, id int64) (*models.Product, error) {
	f.record("Product")
	f.gotProductID = id
	return f.product, f.productErr
}

func (f *fakeAPI) AddCartItem(_ context.Context, productID int64, quantity int) error {
	f.record("AddCartItem")
	f.gotAddID, f.gotAddQty = productID, quantity
	return f.addErr
}

func (f *fakeAPI) Cart(context.Context) (*models.Cart, error) {
	f.record("Cart")
	return f.cart, f.cartErr
}

func (f *fakeAPI) UpdateCartItem(_ context.Context, itemID int64, quantity int) error {
	f.record("UpdateCartItem")
	f.gotItemID, f.gotQty = itemID, quantity
	return f.updateErr
}

func (f *fakeAPI) RemoveCartItem(_ context.Context, itemID int64) error {
	f.record("RemoveCartItem")
	f.gotItemID = itemID
	return f.removeErr
}

func (f *fakeAPI) PlaceOrder(context.Context) error {
	f.record("PlaceOrder")
	return f.placeErr
}

func (f *fakeAPI) Orders(context.Context) ([]models.Order, error) {
	f.record("Orders")
	return f.orders, f.ordersErr
}

func (f *fakeAPI) Order(_ context.Context, id int64) (*models.Order, error) {
	f.record("Order")
	f.gotOrderID = id
	return f.order, f.orderErr
}
