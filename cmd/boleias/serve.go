package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/boleias/internal/pkg/audit"
	"github.com/piresc/boleias/internal/pkg/database"
	"github.com/piresc/boleias/internal/pkg/health"
	"github.com/piresc/boleias/internal/pkg/logger"
	"github.com/piresc/boleias/internal/pkg/middleware"
	"github.com/piresc/boleias/internal/pkg/nsq"
	"github.com/piresc/boleias/internal/pkg/observability"
	"github.com/piresc/boleias/internal/pkg/server"
	matchHandler "github.com/piresc/boleias/services/match/handler"
	matchUsecase "github.com/piresc/boleias/services/match/usecase"
	ridesHandler "github.com/piresc/boleias/services/rides/handler"
	ridesUsecase "github.com/piresc/boleias/services/rides/usecase"
	"github.com/spf13/cobra"
)

// ServeOptions holds flags for the serve command
type ServeOptions struct {
	*RootOptions
	Migrate bool
}

// NewServeCommand creates the serve command
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the public submission API and the coordinator API.

Example:
  boleias serve --config config/boleias.env
  DB_DRIVER=memory boleias serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Migrate, "migrate", false, "apply pending migrations before serving")

	return cmd
}

func runServe(ctx context.Context, opts *ServeOptions) error {
	configs := opts.configs
	zl := opts.log

	st, err := openStores(ctx, configs.Database, opts.Migrate)
	if err != nil {
		return err
	}

	healthSvc := health.NewService()
	healthSvc.AddChecker("store", st.checker)

	var publisher audit.Publisher
	var producer *nsq.Producer
	if configs.NSQ.Enabled {
		producer, err = nsq.NewProducer(configs.NSQ.NSQDAddress)
		if err != nil {
			_ = st.close(ctx)
			return err
		}
		publisher = producer
		healthSvc.AddChecker("nsq", health.CheckerFunc(func(context.Context) error {
			return producer.Ping()
		}))
	}

	var redisClient *database.RedisClient
	if configs.RateLimit.Enabled {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			if producer != nil {
				producer.Stop()
			}
			_ = st.close(ctx)
			return err
		}
		healthSvc.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	}

	recorder := audit.NewRecorder(st.sink, publisher, configs.Audit).WithTopic(configs.NSQ.Topic)

	matchUC := matchUsecase.NewMatchUC(configs, st.match, recorder)
	ridesUC := ridesUsecase.NewRidesUC(configs, st.rides, recorder, matchUC)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second
	e.Use(middleware.PanicRecoveryMiddleware(zl))
	e.Use(logger.ZapEchoMiddleware(zl))
	e.Use(observability.MetricsMiddleware())

	health.RegisterHealthEndpoints(e, configs.App.Name, configs.App.Version, healthSvc)
	observability.RegisterMetricsEndpoint(e)

	var limiters ridesHandler.Limiters
	var sessionLimiters []echo.MiddlewareFunc
	if redisClient != nil {
		limit, window := configs.RateLimit.Requests, configs.RateLimit.Window
		limiters.Submit = append(limiters.Submit, middleware.SubmissionRateLimiter(limit, window, redisClient))
		limiters.Token = append(limiters.Token, middleware.TokenRateLimiter(limit, window, redisClient))
		sessionLimiters = append(sessionLimiters, middleware.PINRateLimiter(limit, window, redisClient))
	}

	ridesHandler.NewHandler(ridesUC, configs).RegisterRoutes(e, limiters)
	matchHandler.NewHandler(matchUC, configs).RegisterRoutes(e, sessionLimiters...)

	srv := server.NewGracefulServer(e, zl, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(recorder.Wait)
	if producer != nil {
		srv.OnShutdown(func(context.Context) error {
			producer.Stop()
			return nil
		})
	}
	if redisClient != nil {
		srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	}
	srv.OnShutdown(st.close)

	zl.Info("Starting boleias",
		logger.String("env", configs.App.Environment),
		logger.String("store", configs.Database.Driver),
		logger.Bool("nsq", configs.NSQ.Enabled),
		logger.Bool("rate_limit", configs.RateLimit.Enabled))

	return srv.Run(ctx)
}
