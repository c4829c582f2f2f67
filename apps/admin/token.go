package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/saraquenta/Sistema-EAME/core/auth"
)

// token prints a session token for the active user with the given email.
func (cli *commandLine) token(email string) error {
	usr, err := cli.svcs.User.GetByEmail(context.Background(), email)
	if err != nil {
		return err
	}
	if !usr.IsActive {
		return auth.ErrAccountInactive
	}
	token, err := cli.svcs.Auth.Issue(usr)
	if err != nil {
		return errors.Wrap(err, "issuing token")
	}
	fmt.Fprintln(cli.out, token)
	return nil
}
