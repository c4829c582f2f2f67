package main

import (
	"log"
	"os"

	"github.com/saraquenta/Sistema-EAME/apps/shared"
	"github.com/saraquenta/Sistema-EAME/core"
	emailsvc "github.com/saraquenta/Sistema-EAME/services/email"
	logsvc "github.com/saraquenta/Sistema-EAME/services/logger"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// the CLI always works on the sample dataset, as the api does
	conf.Seed.Enabled = true
	db, err := shared.NewStore(conf)
	if err != nil {
		logger.Fatal("seeding record store", err)
	}

	cli := commandLine{
		svcs: shared.NewServices(conf, db, emailsvc.NewConsoleServiceMock(conf, logger), nil, logger),
		out:  os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("admin command failed: "+err.Error(), err)
		}
		os.Exit(1)
	}
}
