// Package cli provides the interactive storefront command-line client.
//
// App drives a ui.Shell from a read–eval–print loop: each command performs
// one user action (login, switching tabs, adding to the cart, placing an
// order, ...) and the resulting page is printed as text. Credentials are
// prompted for interactively; the password is read without echo when stdin
// is a terminal.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
