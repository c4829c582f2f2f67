package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/saraquenta/Sistema-EAME/core/user"
)

// hashPassword prints the bcrypt hash of pwd, for use as seed.adminPasswordHash.
// The password is checked against the seed admin's attributes.
func (cli *commandLine) hashPassword(pwd string) error {
	np := user.NewPassword{
		Password: pwd,
		FullName: "Administrador del Sistema",
		Username: "admin",
		Email:    "admin@eame.mil.bo",
	}
	if err := cli.svcs.User.CheckPassword(np); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fe.Translate(cli.svcs.Translator))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}

	var usr user.User
	if err := usr.SetPassword(pwd); err != nil {
		return errors.Wrap(err, "hashing password")
	}
	fmt.Fprintln(cli.out, string(usr.PasswordHash))
	return nil
}
