// Command yogabook is an interactive terminal client for the yoga
// booking API. It drives the same session, navigation and form state a
// graphical front end would, against either the stub server or a real
// backend.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/savasana-dev/yogabook/internal/authstate"
	"github.com/savasana-dev/yogabook/internal/config"
	"github.com/savasana-dev/yogabook/internal/controller"
	"github.com/savasana-dev/yogabook/internal/form"
	"github.com/savasana-dev/yogabook/internal/gateway"
	"github.com/savasana-dev/yogabook/internal/logger"
	"github.com/savasana-dev/yogabook/internal/model"
	"github.com/savasana-dev/yogabook/internal/validation"
	"github.com/savasana-dev/yogabook/internal/view"
)

// consoleNotifier prints confirmation notices the way a web client
// would show a snackbar.
type consoleNotifier struct{}

func (consoleNotifier) Notify(message string) {
	fmt.Println(">>", message)
}

// app bundles the wired client state for the command loop.
type app struct {
	auth          *authstate.State
	router        *view.Router
	nav           *view.Nav
	login         *form.Login
	register      *form.Register
	sessionForm   *form.SessionForm
	sessions      *controller.SessionList
	participation *controller.Participation
	account       *controller.Account
	teachers      *gateway.TeacherGateway
	reader        *bufio.Reader
}

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("api", cfg.APIBaseURL).
		Str("log_level", cfg.LogLevel).
		Msg("Starting yogabook client")

	// ─── Initialize Validator ──────────────────────────────────────────
	validation.Setup()

	// ─── Wire Client State ─────────────────────────────────────────────
	auth := authstate.New(log)
	client := gateway.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, auth, log)
	authGW := gateway.NewAuthGateway(client)
	sessionGW := gateway.NewSessionGateway(client)
	teacherGW := gateway.NewTeacherGateway(client)
	userGW := gateway.NewUserGateway(client)

	router := view.NewRouter(auth, log)
	sessions := controller.NewSessionList(sessionGW, log)
	participation := controller.NewParticipation(sessionGW, auth, log)
	account := controller.NewAccount(userGW, auth, log)

	router.Register(view.View{Route: view.RouteHome})
	router.Register(view.View{Route: view.RouteLogin})
	router.Register(view.View{Route: view.RouteRegister})
	router.Register(view.View{Route: view.RouteSessions, Protected: true, Resolve: sessions.Load})
	router.Register(view.View{Route: view.RouteSessionDetail, Protected: true})
	router.Register(view.View{Route: view.RouteSessionCreate, Protected: true})
	router.Register(view.View{Route: view.RouteSessionUpdate, Protected: true})
	router.Register(view.View{Route: view.RouteMe, Protected: true})

	nav := view.NewNav(auth, router, log)
	defer nav.Close()

	notifier := consoleNotifier{}
	a := &app{
		auth:          auth,
		router:        router,
		nav:           nav,
		login:         form.NewLogin(authGW, auth, router, log),
		register:      form.NewRegister(authGW, router, log),
		sessionForm:   form.NewSessionForm(sessionGW, auth, router, notifier, log),
		sessions:      sessions,
		participation: participation,
		account:       account,
		teachers:      teacherGW,
		reader:        bufio.NewReader(os.Stdin),
	}

	a.run(context.Background())
}

func (a *app) run(ctx context.Context) {
	fmt.Println("yogabook client. Type 'help' for commands.")
	for {
		fmt.Printf("[%s] > ", a.router.Current())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			return
		}
		if err := a.dispatch(ctx, cmd, args); err != nil {
			fmt.Println("error:", err)
		}
	}
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		a.printHelp()
	case "nav":
		for _, link := range a.nav.Links() {
			fmt.Printf("  %-10s %s\n", link.Label, link.To)
		}
	case "login":
		return a.doLogin(ctx)
	case "register":
		return a.doRegister(ctx)
	case "logout":
		a.nav.Logout(ctx)
		fmt.Println("logged out")
	case "whoami":
		a.printWhoami()
	case "sessions":
		return a.doSessions(ctx)
	case "detail":
		if len(args) != 1 {
			return fmt.Errorf("usage: detail <session-id>")
		}
		return a.doDetail(ctx, args[0])
	case "participate":
		if len(args) != 1 {
			return fmt.Errorf("usage: participate <session-id>")
		}
		return a.doParticipate(ctx, args[0], true)
	case "unparticipate":
		if len(args) != 1 {
			return fmt.Errorf("usage: unparticipate <session-id>")
		}
		return a.doParticipate(ctx, args[0], false)
	case "create-session":
		return a.doSessionForm(ctx, "")
	case "update-session":
		if len(args) != 1 {
			return fmt.Errorf("usage: update-session <session-id>")
		}
		return a.doSessionForm(ctx, args[0])
	case "delete-session":
		if len(args) != 1 {
			return fmt.Errorf("usage: delete-session <session-id>")
		}
		return a.doDeleteSession(ctx, args[0])
	case "teachers":
		return a.doTeachers(ctx)
	case "me":
		return a.doMe(ctx)
	case "delete-account":
		return a.doDeleteAccount(ctx)
	default:
		return fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
	return nil
}

func (a *app) printHelp() {
	fmt.Println(`commands:
  nav                      show navigation links for the current state
  login                    sign in
  register                 create an account
  logout                   sign out
  whoami                   show the authenticated principal
  sessions                 list yoga sessions
  detail <id>              show one session
  participate <id>         join a session
  unparticipate <id>       leave a session
  create-session           create a session (admin)
  update-session <id>      edit a session (admin)
  delete-session <id>      remove a session (admin)
  teachers                 list teachers
  me                       show your profile
  delete-account           delete your account (members only)
  quit                     exit`)
}

func (a *app) printWhoami() {
	principal, ok := a.auth.Principal()
	if !ok {
		fmt.Println("not logged in")
		return
	}
	fmt.Printf("%s %s <%s> admin=%t\n", principal.FirstName, principal.LastName, principal.Username, principal.Admin)
}

func (a *app) doLogin(ctx context.Context) error {
	email := a.prompt("Email: ")
	password, err := a.promptPassword("Password: ")
	if err != nil {
		return err
	}

	a.login.Set(model.LoginRequest{Email: email, Password: password})
	if errs := a.login.Errors(); errs != nil {
		printFieldErrors(errs)
		return nil
	}
	if err := a.login.Submit(ctx); err != nil {
		fmt.Println("login failed")
		return nil
	}
	a.printWhoami()
	return nil
}

func (a *app) doRegister(ctx context.Context) error {
	firstName := a.prompt("First name: ")
	lastName := a.prompt("Last name: ")
	email := a.prompt("Email: ")
	password, err := a.promptPassword("Password: ")
	if err != nil {
		return err
	}

	a.register.Set(model.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})
	if errs := a.register.Errors(); errs != nil {
		printFieldErrors(errs)
		return nil
	}
	if err := a.register.Submit(ctx); err != nil {
		fmt.Println("registration failed:", err)
		return nil
	}
	fmt.Println("account created, please log in")
	return nil
}

func (a *app) doSessions(ctx context.Context) error {
	if a.router.Navigate(ctx, view.RouteSessions) != view.RouteSessions {
		fmt.Println("please log in first")
		return nil
	}
	actions := view.ActionsFor(a.auth)
	for _, s := range a.sessions.Sessions() {
		fmt.Printf("  #%d %s (%s) teacher=%d participants=%d\n",
			s.ID, s.Name, s.Date.Format("2006-01-02"), s.TeacherID, len(s.Users))
	}
	if actions.CanCreate {
		fmt.Println("  (admin: create-session / update-session / delete-session available)")
	}
	return nil
}

func (a *app) doDetail(ctx context.Context, id string) error {
	if a.router.Navigate(ctx, view.RouteSessionDetail) != view.RouteSessionDetail {
		fmt.Println("please log in first")
		return nil
	}
	if err := a.participation.LoadDetail(ctx, id); err != nil {
		return err
	}
	s := a.participation.Session()
	fmt.Printf("#%d %s\n  %s\n  date: %s  teacher: %d  participants: %v\n",
		s.ID, s.Name, s.Description, s.Date.Format("2006-01-02"), s.TeacherID, s.Users)
	if a.participation.IsParticipant() {
		fmt.Println("  you participate in this session")
	}
	return nil
}

func (a *app) doParticipate(ctx context.Context, sessionID string, join bool) error {
	principal, ok := a.auth.Principal()
	if !ok {
		fmt.Println("please log in first")
		return nil
	}
	userID := strconv.FormatInt(principal.ID, 10)

	var err error
	if join {
		err = a.participation.Participate(ctx, sessionID, userID)
	} else {
		err = a.participation.UnParticipate(ctx, sessionID, userID)
	}
	if err != nil {
		return err
	}
	fmt.Printf("participants now: %v\n", a.participation.Session().Users)
	return nil
}

func (a *app) doSessionForm(ctx context.Context, sessionID string) error {
	target := view.RouteSessionCreate
	if sessionID != "" {
		target = view.RouteSessionUpdate
	}
	if a.router.Navigate(ctx, target) != target {
		fmt.Println("please log in first")
		return nil
	}

	if err := a.sessionForm.Init(ctx, sessionID); err != nil {
		return err
	}
	if a.router.Current() == view.RouteSessions {
		fmt.Println("administrator access required")
		return nil
	}

	current := a.sessionForm.Fields()
	req := model.SessionRequest{
		Name:        a.promptDefault("Name", current.Name),
		Date:        a.promptDefault("Date (YYYY-MM-DD)", current.Date),
		Description: a.promptDefault("Description", current.Description),
	}
	teacherRaw := a.promptDefault("Teacher id", strconv.FormatInt(current.TeacherID, 10))
	teacherID, err := strconv.ParseInt(teacherRaw, 10, 64)
	if err != nil {
		return fmt.Errorf("teacher id must be a number")
	}
	req.TeacherID = teacherID

	a.sessionForm.Set(req)
	if errs := a.sessionForm.Errors(); errs != nil {
		printFieldErrors(errs)
		return nil
	}
	return a.sessionForm.Submit(ctx)
}

func (a *app) doDeleteSession(ctx context.Context, id string) error {
	if !view.ActionsFor(a.auth).CanDelete {
		fmt.Println("administrator access required")
		return nil
	}
	if err := a.participation.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Println(">> Session deleted !")
	a.router.Navigate(ctx, view.RouteSessions)
	return nil
}

func (a *app) doTeachers(ctx context.Context) error {
	teachers, err := a.teachers.All(ctx)
	if err != nil {
		return err
	}
	for _, t := range teachers {
		fmt.Printf("  #%d %s %s\n", t.ID, t.FirstName, t.LastName)
	}
	return nil
}

func (a *app) doMe(ctx context.Context) error {
	if a.router.Navigate(ctx, view.RouteMe) != view.RouteMe {
		fmt.Println("please log in first")
		return nil
	}
	user, err := a.account.Load(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s <%s>\n  member since %s\n",
		user.FirstName, user.LastName, user.Email, user.CreatedAt.Format("2006-01-02"))
	if view.CanDeleteAccount(a.auth) {
		fmt.Println("  (delete-account available)")
	}
	return nil
}

func (a *app) doDeleteAccount(ctx context.Context) error {
	if !view.CanDeleteAccount(a.auth) {
		fmt.Println("account deletion is only available to regular members")
		return nil
	}
	confirm := a.prompt("Type 'yes' to delete your account: ")
	if confirm != "yes" {
		fmt.Println("aborted")
		return nil
	}
	if err := a.account.DeleteSelf(ctx); err != nil {
		return err
	}
	fmt.Println(">> Your account has been deleted !")
	a.router.Navigate(ctx, view.RouteHome)
	return nil
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	line, _ := a.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *app) promptDefault(label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, _ := a.reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	return line
}

func (a *app) promptPassword(label string) (string, error) {
	fmt.Print(label)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(bytePassword), nil
}

func printFieldErrors(errs map[string]string) {
	for field, msg := range errs {
		fmt.Printf("  %s: %s\n", field, msg)
	}
}
