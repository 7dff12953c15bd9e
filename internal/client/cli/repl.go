package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	inApp() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	ShowSignup(ctx context.Context) error
	ShowLogin(ctx context.Context) error
	Logout(ctx context.Context) error
	Tab(ctx context.Context, name string) error
	Details(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Update(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	PlaceOrder(ctx context.Context) error
	OrderDetails(ctx context.Context, args []string) error
	Status(ctx context.Context) error
}

const (
	helpAuth = "Available commands: login, signup, show-signup, show-login, status, exit"
	helpApp  = "Available commands: products, cart, orders (or tab <name>), details <id>, add <id> [qty], " +
		"update <itemId> <qty>, remove <itemId>, order, order-details <id>, status, logout, exit"
)

// runREPL starts the read–eval–print loop of the storefront CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on a with the remaining tokens as arguments. The
// prompt shows the current status (from statusFn). The loop exits on EOF or
// when the user types "exit" or "quit".
//
// Handler errors are printed and the loop continues; no error is fatal.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.inApp() {
				printlnFn(helpApp)
			} else {
				printlnFn(helpAuth)
			}

		case "login":
			err = a.Login(ctx)
		case "signup":
			err = a.Signup(ctx)
		case "show-signup":
			err = a.ShowSignup(ctx)
		case "show-login":
			err = a.ShowLogin(ctx)
		case "logout":
			err = a.Logout(ctx)

		case "tab":
			if len(args) != 1 {
				printlnFn("Usage: tab <products|cart|orders>")
				continue
			}
			err = a.Tab(ctx, args[0])
		case "products", "cart", "orders":
			err = a.Tab(ctx, cmd)

		case "details":
			err = a.Details(ctx, args)
		case "add":
			err = a.Add(ctx, args)
		case "update":
			err = a.Update(ctx, args)
		case "remove":
			err = a.Remove(ctx, args)
		case "order":
			err = a.PlaceOrder(ctx)
		case "order-details":
			err = a.OrderDetails(ctx, args)
		case "status":
			err = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
