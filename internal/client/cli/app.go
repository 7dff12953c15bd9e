package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/client/tokenstore"
	"github.com/dmitrijs2005/storefront/internal/client/ui"
	"github.com/dmitrijs2005/storefront/internal/client/view"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var errUsage = errors.New("usage")

// shell is the part of ui.Shell the CLI drives.
type shell interface {
	Init(ctx context.Context)
	State() ui.State
	Page() view.Page
	Login(ctx context.Context, username, password string) error
	Signup(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	ShowSignup() error
	ShowLogin() error
	SwitchTab(ctx context.Context, name string) error
	ProductDetails(ctx context.Context, id int64) error
	AddToCart(ctx context.Context, productID int64, quantity int) error
	UpdateCartItem(ctx context.Context, itemID int64, quantityInput string) error
	RemoveCartItem(ctx context.Context, itemID int64) error
	PlaceOrder(ctx context.Context) error
	OrderDetails(ctx context.Context, id int64) error
}

var _ shell = (*ui.Shell)(nil)

// App is the interactive storefront client. Each command runs one shell
// action and then prints the resulting page.
type App struct {
	shell    shell
	store    tokenstore.Store
	renderer view.Renderer
	reader   *bufio.Reader
	out      io.Writer
	log      logging.Logger
}

func NewApp(sh shell, store tokenstore.Store, renderer view.Renderer, in io.Reader, out io.Writer, log logging.Logger) *App {
	return &App{
		shell:    sh,
		store:    store,
		renderer: renderer,
		reader:   bufio.NewReader(in),
		out:      out,
		log:      log,
	}
}

// Run shows the starting page and blocks in the REPL until the user exits
// or input ends.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to the Storefront CLI (type 'help' for commands)")
	a.shell.Init(ctx)
	a.render(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) inApp() bool {
	return a.shell.State().InApp()
}

func (a *App) getStatus() string {
	page := a.shell.Page()
	if page.InApp && page.App.Welcome != "" {
		return fmt.Sprintf("(%s %s)", page.State, strings.TrimPrefix(page.App.Welcome, "Welcome, "))
	}
	return fmt.Sprintf("(%s)", page.State)
}

func (a *App) render(ctx context.Context) {
	page := a.shell.Page()
	if err := a.renderer.Render(a.out, &page); err != nil {
		a.log.Error(ctx, "render failed", "err", err)
	}
}

// then renders the page after a successful shell call and passes err on.
func (a *App) then(ctx context.Context, err error) error {
	if err != nil {
		return err
	}
	a.render(ctx)
	return nil
}

func (a *App) readCredentials() (string, []byte, error) {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	return username, password, nil
}

// Login prompts for credentials and signs in. Validation and server
// messages are shown on the page, not returned.
func (a *App) Login(ctx context.Context) error {
	if a.inApp() {
		return common.ErrNotInAuth
	}
	username, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer wipe(password)

	return a.then(ctx, a.shell.Login(ctx, username, string(password)))
}

func (a *App) Signup(ctx context.Context) error {
	if a.inApp() {
		return common.ErrNotInAuth
	}
	if err := a.shell.ShowSignup(); err != nil {
		return err
	}
	username, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer wipe(password)

	return a.then(ctx, a.shell.Signup(ctx, username, string(password)))
}

func (a *App) ShowSignup(ctx context.Context) error {
	return a.then(ctx, a.shell.ShowSignup())
}

func (a *App) ShowLogin(ctx context.Context) error {
	return a.then(ctx, a.shell.ShowLogin())
}

func (a *App) Logout(ctx context.Context) error {
	return a.then(ctx, a.shell.Logout(ctx))
}

func (a *App) Tab(ctx context.Context, name string) error {
	return a.then(ctx, a.shell.SwitchTab(ctx, name))
}

func (a *App) Details(ctx context.Context, args []string) error {
	id, err := oneID(args, "details <id>")
	if err != nil {
		return err
	}
	return a.then(ctx, a.shell.ProductDetails(ctx, id))
}

// Add puts a product in the cart; the quantity defaults to 1.
func (a *App) Add(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: add <id> [qty]", errUsage)
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	qty := 1
	if len(args) == 2 {
		qty = ui.ParseQuantity(args[1])
	}
	return a.then(ctx, a.shell.AddToCart(ctx, id, qty))
}

func (a *App) Update(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: update <itemId> <qty>", errUsage)
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return a.then(ctx, a.shell.UpdateCartItem(ctx, id, args[1]))
}

func (a *App) Remove(ctx context.Context, args []string) error {
	id, err := oneID(args, "remove <itemId>")
	if err != nil {
		return err
	}
	return a.then(ctx, a.shell.RemoveCartItem(ctx, id))
}

func (a *App) PlaceOrder(ctx context.Context) error {
	return a.then(ctx, a.shell.PlaceOrder(ctx))
}

func (a *App) OrderDetails(ctx context.Context, args []string) error {
	id, err := oneID(args, "order-details <id>")
	if err != nil {
		return err
	}
	return a.then(ctx, a.shell.OrderDetails(ctx, id))
}

// Status prints the view state, the user named by the token and when the
// token was saved.
func (a *App) Status(ctx context.Context) error {
	token, err := a.store.Get(ctx)
	if err != nil {
		return err
	}

	user := "-"
	if name, ok := session.UsernameFromToken(token); ok {
		user = name
	}

	saved := "no token"
	if token != "" {
		at, ok, err := a.store.SavedAt(ctx)
		if err != nil {
			return err
		}
		if ok {
			saved = at.Local().Format(time.RFC3339)
		}
	}

	fmt.Fprintf(a.out, "State: %s\nUser: %s\nToken saved: %s\n", a.shell.State(), user, saved)
	return nil
}

func oneID(args []string, usage string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s", errUsage, usage)
	}
	return parseID(args[0])
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidNumber, s)
	}
	return id, nil
}
