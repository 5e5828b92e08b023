package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/usersvc/internal/client/client"
	"github.com/dmitrijs2005/usersvc/internal/client/config"
	"github.com/dmitrijs2005/usersvc/internal/client/services"
)

type App struct {
	config  *config.Config
	account services.AccountService
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		account: services.NewAccountService(apiClient),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	_, ok := a.account.Whoami()
	return ok
}

func (a *App) getStatus() string {
	u, ok := a.account.Whoami()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s)", u.Email)
}

// Run checks the server and then serves the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the user service CLI (type 'help' for commands)")

	if err := a.account.Ping(ctx); err != nil {
		fmt.Fprintf(a.out, "Warning: %s is not reachable: %v\n", a.config.ServerEndpointAddr, err)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
