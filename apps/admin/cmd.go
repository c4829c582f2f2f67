package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/saraquenta/Sistema-EAME/apps/shared"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	svcs *shared.Services
	out  io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  hashpassword - prompt for a password, check it against the password policy and print its bcrypt hash")
	fmt.Fprintln(cli.out, "  token -email EMAIL - print a session token for an active user")
	fmt.Fprintln(cli.out, "  export -year YEAR -out FILE [-scope all|year] - write the report workbook of a cohort year")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	tokenCmd := flag.NewFlagSet("token", flag.ContinueOnError)
	tokenCmd.SetOutput(cli.out)
	tokenEmail := tokenCmd.String("email", "", "The user's email.")

	exportCmd := flag.NewFlagSet("export", flag.ContinueOnError)
	exportCmd.SetOutput(cli.out)
	exportYear := exportCmd.String("year", "", "The cohort year, e.g. 2024.")
	exportOut := exportCmd.String("out", "", "The .xlsx file to write.")
	exportScope := exportCmd.String("scope", "all", "Which merits & discharges are counted: all or year.")

	switch args[1] {
	case "hashpassword":
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			cli.printUsage()
			return errHelp
		}
		return cli.hashPassword(string(pwd))

	case "token":
		if err := tokenCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *tokenEmail == "" {
			tokenCmd.Usage()
			return errHelp
		}
		return cli.token(*tokenEmail)

	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportYear == "" || *exportOut == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(*exportYear, *exportScope, *exportOut)

	default:
		cli.printUsage()
		return errHelp
	}
}
