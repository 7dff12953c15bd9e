package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	err   error
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeExec) inApp() bool { return f.loggedIn }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Signup(context.Context) error     { return f.record("signup") }
func (f *fakeExec) ShowSignup(context.Context) error { return f.record("show-signup") }
func (f *fakeExec) ShowLogin(context.Context) error  { return f.record("show-login") }
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Tab(_ context.Context, name string) error { return f.record("tab " + name) }
func (f *fakeExec) Details(_ context.Context, args []string) error {
	return f.record("details " + strings.Join(args, " "))
}
func (f *fakeExec) Add(_ context.Context, args []string) error {
	return f.record("add " + strings.Join(args, " "))
}
func (f *fakeExec) Update(_ context.Context, args []string) error {
	return f.record("update " + strings.Join(args, " "))
}
func (f *fakeExec) Remove(_ context.Context, args []string) error {
	return f.record("remove " + strings.Join(args, " "))
}
func (f *fakeExec) PlaceOrder(context.Context) error { return f.record("order") }
func (f *fakeExec) OrderDetails(_ context.Context, args []string) error {
	return f.record("order-details " + strings.Join(args, " "))
}
func (f *fakeExec) Status(context.Context) error { return f.record("status") }

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	_ = capturePrints(t)

	input := strings.Join([]string{
		"",
		"help",
		"login",
		"products",
		"tab cart",
		"details 3",
		"add 3 2",
		"update 7 abc",
		"remove 7",
		"order",
		"orders",
		"order-details 5",
		"status",
		"logout",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	assert.Equal(t, []string{
		"login", "tab products", "tab cart", "details 3", "add 3 2", "update 7 abc",
		"remove 7", "order", "tab orders", "order-details 5", "status", "logout",
	}, exec.calls)
}

func TestRunREPL_HelpDependsOnView(t *testing.T) {
	lines := capturePrints(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "(AUTH:LOGIN)" }, rdr("help\n"))
	assert.Contains(t, *lines, helpAuth)
	assert.Contains(t, *lines, "shop (AUTH:LOGIN)> ")

	*lines = nil
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "" }, rdr("help\n"))
	assert.Contains(t, *lines, helpApp)
}

func TestRunREPL_UnknownUsageAndErrors(t *testing.T) {
	lines := capturePrints(t)

	exec := &fakeExec{err: errors.New("not in app view")}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("foobar\ntab\ncart\nquit\n"))

	assert.Equal(t, []string{"tab cart"}, exec.calls)
	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Usage: tab <products|cart|orders>")
	assert.Contains(t, out, "Error: not in app view")
	assert.Contains(t, out, "Bye!")
}
