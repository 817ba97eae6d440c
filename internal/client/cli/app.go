package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/avolkovs/storekeeper/internal/client/config"
	"github.com/avolkovs/storekeeper/internal/client/services"
	"github.com/avolkovs/storekeeper/internal/client/session"
	"github.com/avolkovs/storekeeper/internal/logging"
)

// App is the interactive terminal client. It owns the input reader and the
// output writer; everything else is injected.
type App struct {
	config     *config.Config
	session    *session.Manager
	auth       services.AuthService
	users      services.UserService
	products   services.ProductService
	categories services.CategoryService
	logger     logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

// Deps bundles the collaborators NewApp wires into the App.
type Deps struct {
	Config     *config.Config
	Session    *session.Manager
	Auth       services.AuthService
	Users      services.UserService
	Products   services.ProductService
	Categories services.CategoryService
	Logger     logging.Logger
}

func NewApp(d Deps) *App {
	return &App{
		config:     d.Config,
		session:    d.Session,
		auth:       d.Auth,
		users:      d.Users,
		products:   d.Products,
		categories: d.Categories,
		logger:     d.Logger,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated
}
