package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"go.uber.org/fx"

	"post_later/dal"
	"post_later/logic"
	"post_later/server"
	"post_later/shared"
	"post_later/texts"
)

type initErrorHandler struct {
}

func (*initErrorHandler) HandleError(err error) {
	fmt.Fprintf(os.Stderr, "Failed to initialize dependency injection\n%v", err)
}

var logger *log.Logger

func main() {

	cfg := shared.LoadConfig()
	provideConfig := func() *shared.Config {
		return cfg
	}

	logger = initLogger(cfg)
	provideLogger := func() shared.ILogger {
		return logger
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			provideConfig,
			provideLogger,
			server.NewHTTPServer,
			fx.Annotate(server.NewMux, fx.ParamTags(`group:"handler_group"`)),
			shared.NewClock,
			shared.NewUserAgent,
			logic.NewKeyStore,
			logic.NewMetrics,
			logic.NewBlockedInstances,
			logic.NewMediaStaging,
			logic.NewAccountDirectory,
			logic.NewNotifier,
			logic.NewDispatcher,
			logic.NewScheduler,
			logic.NewProfiler,
			texts.NewTexts,
			dal.NewRepo,
			asProviderDef(logic.NewMastodonProvider),
			fx.Annotate(logic.NewProviderRegistry, fx.ParamTags(`group:"provider"`)),
			asHandlerGroupDef(server.NewApiHandlerGroup),
			asHandlerGroupDef(server.NewAuthHandlerGroup),
			asHandlerGroupDef(server.NewMetricsHandlerGroup),
		),
		fx.Invoke(
			registerHooks,
			func(repo dal.IRepo) { repo.InitUpdateDb() },
			func(*http.Server) {},
			func(logic.IScheduler) {},
			func(logic.IProfiler) {},
		),
		fx.ErrorHook(&initErrorHandler{}),
	)
	app.Run()
}

func asHandlerGroupDef(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(server.IHandlerGroup)),
		fx.ResultTags(`group:"handler_group"`),
	)
}

func asProviderDef(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(logic.IProvider)),
		fx.ResultTags(`group:"provider"`),
	)
}

func initLogger(cfg *shared.Config) *log.Logger {

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		msg := fmt.Sprintf("Failed to open log file '%v': %v", cfg.LogFile, err)
		log.Fatal(msg)
	}

	logger := log.New(io.MultiWriter(os.Stdout, logFile))
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat("2006-01-02 15:04:05.000")
	logger.SetOutput(io.MultiWriter(os.Stdout, logFile))
	switch cfg.LogLevel {
	case "Debug":
		logger.SetLevel(log.DebugLevel)
	case "Info":
		logger.SetLevel(log.InfoLevel)
	case "Warn":
		logger.SetLevel(log.WarnLevel)
	case "Error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.ErrorLevel)
	}
	logger.SetReportCaller(true)

	return logger
}

func registerHooks(lc fx.Lifecycle, metrics logic.IMetrics) {
	lc.Append(
		fx.Hook{
			OnStart: func(context.Context) error {
				logger.Printf("Application starting up")
				metrics.ServiceStarted()
				return nil
			},
			OnStop: func(context.Context) error {
				logger.Printf("Application shutting down")
				return nil
			},
		},
	)
}
