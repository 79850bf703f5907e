// Command genesi is a CLI client for the Genesi personal-finance assistant.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/genesi-finance/genesi-client/internal/api/rest"
	"github.com/genesi-finance/genesi-client/internal/config"
	"github.com/genesi-finance/genesi-client/internal/finance"
	"github.com/genesi-finance/genesi-client/internal/model"
	"github.com/genesi-finance/genesi-client/internal/notify"
	"github.com/genesi-finance/genesi-client/internal/session"
	"github.com/genesi-finance/genesi-client/internal/sessionstore"
	"github.com/genesi-finance/genesi-client/internal/wishes"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func usage() {
	fmt.Fprintf(os.Stderr, `genesi CLI
Usage:
  genesi [-api URL] [-config-dir DIR] [-timeout DUR] <cmd> [args]

Commands:
  version
  register    -name <name> -email <email> -password <pw> -whatsapp <phone>
  login       -email <email> -password <pw>          (saves session)
  logout
  whoami
  summary                                        (finance dashboard totals)
  wishes                                         (list purchase wishes)
  wish-toggle -id <id>                           (flip notification flag)
  wish-rm     -id <id>
`)
	os.Exit(2)
}

// app bundles everything a subcommand needs.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	session *session.Manager
	rest    *rest.Client
}

// main parses configuration and dispatches subcommands.
func main() {
	apiURL := flag.String("api", "", "backend base URL (overrides GENESI_API_URL)")
	cfgDir := flag.String("config-dir", "", "session directory (overrides GENESI_CONFIG_DIR)")
	timeout := flag.Duration("timeout", 0, "request timeout (overrides GENESI_TIMEOUT)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)

	if cmd == "version" {
		fmt.Printf("genesi %s (%s)\n", version, buildDate)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	if *apiURL != "" {
		cfg.APIURL = *apiURL
	}
	if *cfgDir != "" {
		cfg.ConfigDir = *cfgDir
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}

	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	hc := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: rest.NewTransport(nil, logger),
	}
	client := rest.New(cfg.APIURL, hc, cfg.Timeout)
	store := sessionstore.NewFileStore(cfg.ConfigDir)
	sess := session.New(store, client, notify.NewZap(logger), logger)

	a := &app{cfg: cfg, log: logger, session: sess, rest: client}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout+5*time.Second)
	defer cancel()

	switch cmd {
	case "login":
		a.cmdLogin(ctx, flag.Args()[1:])
	case "register":
		a.cmdRegister(ctx, flag.Args()[1:])
	case "logout":
		a.session.Logout()
		fmt.Println("ok")
	case "whoami":
		a.cmdWhoami()
	case "summary":
		a.cmdSummary(ctx)
	case "wishes":
		a.cmdWishes(ctx)
	case "wish-toggle":
		a.cmdWishToggle(ctx, flag.Args()[1:])
	case "wish-rm":
		a.cmdWishRm(ctx, flag.Args()[1:])
	default:
		usage()
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)
	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "need -email and -password")
		os.Exit(1)
	}

	if !a.session.Login(ctx, *email, *password, nil) {
		os.Exit(1)
	}
	fmt.Println("ok")
}

func (a *app) cmdRegister(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	whatsapp := fs.String("whatsapp", "", "whatsapp number")
	_ = fs.Parse(args)
	if *name == "" || *email == "" || *password == "" || *whatsapp == "" {
		fmt.Fprintln(os.Stderr, "need -name -email -password -whatsapp")
		os.Exit(1)
	}

	if !a.session.Register(ctx, *name, *email, *password, *whatsapp, nil) {
		os.Exit(1)
	}
	fmt.Println("ok (account created, now login)")
}

func (a *app) cmdWhoami() {
	u := a.session.User()
	if u == nil {
		fmt.Println("anonymous")
		return
	}
	fmt.Printf("%s <%s> whatsapp=%s id=%s\n", u.Name, u.Email, u.WhatsApp, u.ID)
}

func (a *app) cmdSummary(ctx context.Context) {
	u := a.mustUser()
	fin := finance.New(a.rest, u.ID, a.log)
	if !fin.Fetch(ctx) {
		fail(fmt.Errorf("%s", fin.Snapshot().Err))
	}
	s := fin.Snapshot().Summary
	fmt.Printf("entradas: R$ %.2f\nsaidas:   R$ %.2f\nsaldo:    R$ %.2f\n", s.Income, s.Expenses, s.Balance)
}

func (a *app) cmdWishes(ctx context.Context) {
	u := a.mustUser()
	wm := wishes.New(a.rest, u.ID, a.log)
	if !wm.Fetch(ctx) {
		fail(fmt.Errorf("%s", wm.Snapshot().Err))
	}
	snap := wm.Snapshot()
	if len(snap.Wishes) == 0 {
		fmt.Println("no wishes")
		return
	}
	for _, w := range snap.Wishes {
		fmt.Println(wishLine(w))
	}
}

func (a *app) cmdWishToggle(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("wish-toggle", flag.ExitOnError)
	id := fs.String("id", "", "wish id")
	_ = fs.Parse(args)
	if *id == "" {
		fmt.Fprintln(os.Stderr, "need -id")
		os.Exit(1)
	}

	u := a.mustUser()
	wm := wishes.New(a.rest, u.ID, a.log)
	if !wm.Fetch(ctx) {
		fail(fmt.Errorf("%s", wm.Snapshot().Err))
	}
	current, ok := findWish(wm.Snapshot().Wishes, *id)
	if !ok {
		fail(fmt.Errorf("wish %s not found", *id))
	}
	if !wm.ToggleNotified(ctx, *id, current.Notified) {
		fail(fmt.Errorf("%s", wm.Snapshot().Err))
	}
	fmt.Printf("notificado=%v\n", !current.Notified)
}

func (a *app) cmdWishRm(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("wish-rm", flag.ExitOnError)
	id := fs.String("id", "", "wish id")
	_ = fs.Parse(args)
	if *id == "" {
		fmt.Fprintln(os.Stderr, "need -id")
		os.Exit(1)
	}

	u := a.mustUser()
	wm := wishes.New(a.rest, u.ID, a.log)
	if !wm.Delete(ctx, *id) {
		fail(fmt.Errorf("%s", wm.Snapshot().Err))
	}
	fmt.Println("ok")
}

func (a *app) mustUser() *model.User {
	u := a.session.User()
	if u == nil {
		fail(fmt.Errorf("not logged in (run: genesi login)"))
	}
	return u
}

// ---- helpers ----

func findWish(list []model.Wish, id string) (model.Wish, bool) {
	for _, w := range list {
		if w.ID == id {
			return w, true
		}
	}
	return model.Wish{}, false
}

// wishLine renders one wish for terminal output.
func wishLine(w model.Wish) string {
	line := fmt.Sprintf("%s  %s", w.ID, w.Description)
	if w.PriceLimit != nil {
		line += fmt.Sprintf("  limite=R$%.2f", *w.PriceLimit)
	}
	if w.Mode != "" {
		line += "  modo=" + w.Mode
	}
	if w.BaseAveragePrice != nil {
		line += fmt.Sprintf("  medio=R$%.2f", *w.BaseAveragePrice)
	}
	line += fmt.Sprintf("  notificado=%v", w.Notified)
	if w.CreatedAt != nil {
		line += "  criado=" + w.CreatedAt.Format("2006-01-02")
	}
	return line
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
