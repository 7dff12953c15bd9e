package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/tokenstore"
	"github.com/dmitrijs2005/storefront/internal/client/ui"
	"github.com/dmitrijs2005/storefront/internal/client/view"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShell struct {
	state   ui.State
	welcome string

	calls []string
	err   error

	gotUser, gotPass string
	gotID            int64
	gotQty           int
	gotQtyInput      string
}

func (f *fakeShell) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeShell) Init(context.Context) { f.calls = append(f.calls, "init") }
func (f *fakeShell) State() ui.State      { return f.state }
func (f *fakeShell) Page() view.Page {
	return view.Page{
		State: f.state.String(),
		InApp: f.state.InApp(),
		App:   view.AppView{Welcome: f.welcome},
	}
}
func (f *fakeShell) Login(_ context.Context, username, password string) error {
	f.gotUser, f.gotPass = username, password
	return f.record("login")
}
func (f *fakeShell) Signup(_ context.Context, username, password string) error {
	f.gotUser, f.gotPass = username, password
	return f.record("signup")
}
func (f *fakeShell) Logout(context.Context) error { return f.record("logout") }
func (f *fakeShell) ShowSignup() error            { return f.record("show-signup") }
func (f *fakeShell) ShowLogin() error             { return f.record("show-login") }
func (f *fakeShell) SwitchTab(_ context.Context, name string) error {
	return f.record("tab " + name)
}
func (f *fakeShell) ProductDetails(_ context.Context, id int64) error {
	f.gotID = id
	return f.record("details")
}
func (f *fakeShell) AddToCart(_ context.Context, productID int64, quantity int) error {
	f.gotID, f.gotQty = productID, quantity
	return f.record("add")
}
func (f *fakeShell) UpdateCartItem(_ context.Context, itemID int64, quantityInput string) error {
	f.gotID, f.gotQtyInput = itemID, quantityInput
	return f.record("update")
}
func (f *fakeShell) RemoveCartItem(_ context.Context, itemID int64) error {
	f.gotID = itemID
	return f.record("remove")
}
func (f *fakeShell) PlaceOrder(context.Context) error { return f.record("order") }
func (f *fakeShell) OrderDetails(_ context.Context, id int64) error {
	f.gotID = id
	return f.record("order-details")
}

type countingRenderer struct {
	renders int
	err     error
}

func (r *countingRenderer) Render(w io.Writer, p *view.Page) error {
	r.renders++
	if r.err != nil {
		return r.err
	}
	_, err := fmt.Fprintf(w, "[%s]\n", p.State)
	return err
}

func newTestApp(sh *fakeShell) (*App, *countingRenderer, *bytes.Buffer, *tokenstore.MemoryStore) {
	r := &countingRenderer{}
	out := &bytes.Buffer{}
	store := tokenstore.NewMemoryStore()
	return NewApp(sh, store, r, strings.NewReader(""), out, logging.Discard()), r, out, store
}

func stubCredentials(t *testing.T, user, pass string) {
	t.Helper()
	origText, origPass := getSimpleText, getPassword
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return user, nil }
	getPassword = func(*bufio.Reader, io.Writer) ([]byte, error) { return []byte(pass), nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPass })
}

func TestApp_Login(t *testing.T) {
	stubCredentials(t, "alice@example.com", "secret")
	sh := &fakeShell{state: ui.StateLogin}
	app, r, out, _ := newTestApp(sh)

	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, []string{"login"}, sh.calls)
	assert.Equal(t, "alice@example.com", sh.gotUser)
	assert.Equal(t, "secret", sh.gotPass)
	assert.Equal(t, 1, r.renders)
	assert.Equal(t, "[AUTH:LOGIN]\n", out.String())
}

func TestApp_LoginRejectedInAppView(t *testing.T) {
	stubCredentials(t, "a", "b")
	sh := &fakeShell{state: ui.StateProducts}
	app, r, _, _ := newTestApp(sh)

	assert.ErrorIs(t, app.Login(context.Background()), common.ErrNotInAuth)
	assert.ErrorIs(t, app.Signup(context.Background()), common.ErrNotInAuth)
	assert.Empty(t, sh.calls)
	assert.Zero(t, r.renders)
}

func TestApp_SignupShowsFormFirst(t *testing.T) {
	stubCredentials(t, "bob", "pw")
	sh := &fakeShell{state: ui.StateLogin}
	app, _, _, _ := newTestApp(sh)

	require.NoError(t, app.Signup(context.Background()))
	assert.Equal(t, []string{"show-signup", "signup"}, sh.calls)
	assert.Equal(t, "bob", sh.gotUser)
}

func TestApp_PromptErrorStopsLogin(t *testing.T) {
	origText := getSimpleText
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return "", io.EOF }
	t.Cleanup(func() { getSimpleText = origText })

	sh := &fakeShell{state: ui.StateLogin}
	app, _, _, _ := newTestApp(sh)

	assert.ErrorIs(t, app.Login(context.Background()), io.EOF)
	assert.Empty(t, sh.calls)
}

func TestApp_ShellErrorSkipsRender(t *testing.T) {
	sh := &fakeShell{state: ui.StateLogin, err: common.ErrNotInApp}
	app, r, _, _ := newTestApp(sh)

	assert.ErrorIs(t, app.Tab(context.Background(), "cart"), common.ErrNotInApp)
	assert.Zero(t, r.renders)
}

func TestApp_ArgumentParsing(t *testing.T) {
	ctx := context.Background()
	sh := &fakeShell{state: ui.StateProducts}
	app, _, _, _ := newTestApp(sh)

	require.NoError(t, app.Details(ctx, []string{"12"}))
	assert.Equal(t, int64(12), sh.gotID)

	require.NoError(t, app.Add(ctx, []string{"3"}))
	assert.Equal(t, int64(3), sh.gotID)
	assert.Equal(t, 1, sh.gotQty)

	require.NoError(t, app.Add(ctx, []string{"4", "5x"}))
	assert.Equal(t, 5, sh.gotQty)

	require.NoError(t, app.Add(ctx, []string{"4", "zero"}))
	assert.Equal(t, 1, sh.gotQty)

	require.NoError(t, app.Update(ctx, []string{"9", "abc"}))
	assert.Equal(t, int64(9), sh.gotID)
	assert.Equal(t, "abc", sh.gotQtyInput)

	require.NoError(t, app.Remove(ctx, []string{"9"}))
	require.NoError(t, app.OrderDetails(ctx, []string{"77"}))
	assert.Equal(t, int64(77), sh.gotID)

	assert.Equal(t, []string{"details", "add", "add", "add", "update", "remove", "order-details"}, sh.calls)
}

func TestApp_ArgumentErrors(t *testing.T) {
	ctx := context.Background()
	sh := &fakeShell{state: ui.StateProducts}
	app, _, _, _ := newTestApp(sh)

	assert.ErrorIs(t, app.Details(ctx, nil), errUsage)
	assert.ErrorIs(t, app.Details(ctx, []string{"x"}), common.ErrInvalidNumber)
	assert.ErrorIs(t, app.Add(ctx, []string{"1", "2", "3"}), errUsage)
	assert.ErrorIs(t, app.Add(ctx, []string{"one"}), common.ErrInvalidNumber)
	assert.ErrorIs(t, app.Update(ctx, []string{"1"}), errUsage)
	assert.ErrorIs(t, app.Remove(ctx, []string{"1.5"}), common.ErrInvalidNumber)
	assert.ErrorIs(t, app.OrderDetails(ctx, []string{}), errUsage)
	assert.Empty(t, sh.calls)
}

func TestApp_GetStatus(t *testing.T) {
	sh := &fakeShell{state: ui.StateLogin}
	app, _, _, _ := newTestApp(sh)
	assert.Equal(t, "(AUTH:LOGIN)", app.getStatus())

	sh.state, sh.welcome = ui.StateCart, "Welcome, alice"
	assert.Equal(t, "(APP:CART alice)", app.getStatus())
	assert.True(t, app.inApp())
}

func TestApp_Status(t *testing.T) {
	ctx := context.Background()
	sh := &fakeShell{state: ui.StateLogin}
	app, _, out, store := newTestApp(sh)

	require.NoError(t, app.Status(ctx))
	assert.Equal(t, "State: AUTH:LOGIN\nUser: -\nToken saved: no token\n", out.String())

	out.Reset()
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"alice"}`))
	require.NoError(t, store.Save(ctx, "h."+payload+".s"))
	sh.state = ui.StateProducts

	require.NoError(t, app.Status(ctx))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "State: APP:PRODUCTS", lines[0])
	assert.Equal(t, "User: alice", lines[1])

	saved, err := time.Parse(time.RFC3339, strings.TrimPrefix(lines[2], "Token saved: "))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), saved, time.Minute)
}

func TestApp_RenderErrorIsLogged(t *testing.T) {
	sh := &fakeShell{state: ui.StateProducts}
	app, r, _, _ := newTestApp(sh)
	r.err = errors.New("boom")

	assert.NoError(t, app.PlaceOrder(context.Background()))
	assert.Equal(t, 1, r.renders)
}

func TestApp_RunRendersAndLoops(t *testing.T) {
	_ = capturePrints(t)

	sh := &fakeShell{state: ui.StateLogin}
	r := &countingRenderer{}
	out := &bytes.Buffer{}
	app := NewApp(sh, tokenstore.NewMemoryStore(), r, strings.NewReader("show-signup\nexit\n"), out, logging.Discard())

	app.Run(context.Background())

	assert.Equal(t, []string{"init", "show-signup"}, sh.calls)
	assert.Equal(t, 2, r.renders)
}
