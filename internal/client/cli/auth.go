package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/usersvc/internal/client/client"
	"github.com/dmitrijs2005/usersvc/internal/common"
)

// indirections for tests
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) report(err error) error {
	fmt.Fprintf(a.out, "Error: %v\n", err)
	return err
}

func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return a.report(err)
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.report(err)
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return a.report(err)
	}
	defer common.WipeByteArray(password)

	msg, err := a.account.Register(ctx, name, email, password)
	if err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.report(err)
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return a.report(err)
	}
	defer common.WipeByteArray(password)

	u, err := a.account.Login(ctx, email, password)
	if err != nil {
		return a.report(err)
	}

	fmt.Fprintf(a.out, "Logged in as %s <%s>\n", u.Name, u.Email)
	return nil
}

func (a *App) Whoami(context.Context) error {
	u, ok := a.account.Whoami()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	printUser(a, u)
	return nil
}

func (a *App) Logout(context.Context) error {
	a.account.Logout()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func printUser(a *App, u client.User) {
	fmt.Fprintf(a.out, "id:       %s\nname:     %s\nemail:    %s\n", u.ID, u.Name, u.Email)
}
