package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	echoapi "github.com/saraquenta/Sistema-EAME/apps/api/echo"
	"github.com/saraquenta/Sistema-EAME/apps/shared"
	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/report"
	emailsvc "github.com/saraquenta/Sistema-EAME/services/email"
	logsvc "github.com/saraquenta/Sistema-EAME/services/logger"
	"github.com/saraquenta/Sistema-EAME/storage/cache"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	dbLogger.Enable(!conf.Debug)

	// set up the record store
	db, err := shared.NewStore(conf)
	if err != nil {
		dbLogger.Fatal(fmt.Sprintf("seeding record store: %v", err), err)
	}
	if conf.Seed.Enabled {
		dbLogger.Info(fmt.Sprintf("Record store seeded : version %d", db.Version()))
	}

	// set up the report cache
	var reportCache report.Cache
	if rdb := cache.NewRedisClient(conf); rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				logger.Error(fmt.Sprintf("closing redis client: %v", err), err)
			}
		}()
		helper := cache.NewHelper(rdb, "reports")
		if err := helper.Ping(context.Background()); err != nil {
			logger.Warn(fmt.Sprintf("redis unavailable, reports will be computed on every request: %v", err))
		}
		reportCache = helper
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	svcs := shared.NewServices(conf, db, mailSvc, reportCache, logger)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.Publish("store_version", expvar.Func(func() interface{} { return db.Version() }))

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:          conf,
		Logger:        logger,
		Validate:      svcs.Validate,
		Translator:    svcs.Translator,
		AuthSvc:       svcs.Auth,
		UserSvc:       svcs.User,
		TraineeSvc:    svcs.Trainee,
		DisciplineSvc: svcs.Discipline,
		EvaluationSvc: svcs.Evaluation,
		MeritSvc:      svcs.Merit,
		DischargeSvc:  svcs.Discharge,
		ActivitySvc:   svcs.Activity,
		ReportSvc:     svcs.Report,
	})

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
