package ui

// User-facing texts. Server messages take precedence over the per-action
// fallbacks below.
const (
	msgMissingCredentials = "Please enter username and password."
	msgLoginFailed        = "Login failed."
	msgSignupFailed       = "Signup failed."
	msgNetworkError       = "Network error."
	msgSessionExpired     = "Session expired. Please log in again."
	msgLogoutFailed       = "Logout failed."
	welcomePrefix         = "Welcome, "
	defaultUsername       = "User"

	msgLoadingProducts    = "Loading products..."
	msgNoProducts         = "No products found."
	msgLoadProductsFailed = "Failed to load products."
	msgLoadingProduct     = "Loading product details..."
	msgLoadProductFailed  = "Failed to load product."
	msgLoginToAdd         = "Please login to add items to cart."
	msgAddedToCart        = "Added to cart!"
	msgAddToCartFailed    = "Failed to add to cart."

	msgLoginToViewCart  = "Please login to view your cart."
	msgLoadingCart      = "Loading cart..."
	msgCartEmpty        = "Your cart is empty."
	msgLoadCartFailed   = "Failed to load cart."
	msgUpdateItemFailed = "Failed to update item."
	msgRemoveItemFailed = "Failed to remove item."
	msgPlaceOrderFailed = "Failed to place order."

	msgLoginToViewOrders = "Please login to view your orders."
	msgLoadingOrders     = "Loading orders..."
	msgNoOrders          = "No orders found."
	msgLoadOrdersFailed  = "Failed to load orders."
	msgLoadingOrder      = "Loading order details..."
	msgLoadOrderFailed   = "Failed to load order."
)
