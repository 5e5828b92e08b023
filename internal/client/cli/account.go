package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/usersvc/internal/client/client"
	"github.com/dmitrijs2005/usersvc/internal/common"
)

// Update asks for each field; an empty answer leaves the field unchanged.
func (a *App) Update(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return a.report(err)
	}
	email, err := getSimpleText(a.reader, "New email (empty to keep)", a.out)
	if err != nil {
		return a.report(err)
	}
	password, err := getPassword(a.out, "New password (empty to keep)")
	if err != nil {
		return a.report(err)
	}
	defer common.WipeByteArray(password)

	msg, err := a.account.Update(ctx, client.Profile{Name: name, Email: email, Password: password})
	if err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	msg, err := a.account.Delete(ctx, id)
	if err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, msg)
	return nil
}
