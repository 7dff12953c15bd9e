// Package api talks to the storefront REST backend.
//
// # Overview
//
// Client is the transport contract used by the view layer: auth (Login,
// Signup), catalog (Products, Product), cart (AddCartItem, Cart,
// UpdateCartItem, RemoveCartItem), and orders (PlaceOrder, Orders, Order).
// HTTPClient implements it over net/http with JSON bodies. Every request
// carries an X-Request-ID and, when the session has a token, a bearer
// Authorization header obtained from a HeaderSource.
//
// # Error Handling
//
// A non-2xx response becomes a *StatusError holding the status code and the
// server's message, if any. 401 and 403 match ErrUnauthorized via errors.Is.
// Requests that never produced a response, and 2xx bodies that cannot be
// decoded, wrap ErrUnavailable.
//
// No retries, timeouts or caching are performed.
package api
