package ui

import (
	"strconv"
	"strings"
)

// State is the visible screen: the auth view with one of its forms, or the
// app view with one active tab.
type State string

const (
	StateLogin    State = "AUTH:LOGIN"
	StateSignup   State = "AUTH:SIGNUP"
	StateProducts State = "APP:PRODUCTS"
	StateCart     State = "APP:CART"
	StateOrders   State = "APP:ORDERS"
)

func (s State) String() string { return string(s) }

func (s State) InApp() bool { return strings.HasPrefix(string(s), "APP:") }

// ParseQuantity reads a leading integer from input the way a browser's
// parseInt does ("12abc" is 12, " 3.9" is 3). Anything unreadable or below 1
// becomes 1.
func ParseQuantity(input string) int {
	s := strings.TrimLeft(input, " \t\r\n")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 1
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 1 {
		return 1
	}
	return n
}
