package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-query-service/config"
	"ulascansenturk/weather-query-service/internal/api/v1/handlers"
	"ulascansenturk/weather-query-service/internal/db"
	"ulascansenturk/weather-query-service/internal/db/weatherquery"
	"ulascansenturk/weather-query-service/internal/providers"
	"ulascansenturk/weather-query-service/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	gormDB, dbErr := db.Open(conf)
	if dbErr != nil {
		logger.Fatal().Err(dbErr).Str("driver", conf.DBDriver).Msg("failed to initialize database")
	}

	weatherRepo := weatherquery.NewRepository(gormDB)

	weatherAPI := providers.NewOpenMeteoClient(conf.GeocodingURL, conf.ForecastURL, conf.UpstreamTimeout)

	queryService := service.NewQueryService(weatherAPI, weatherRepo)

	handler := handlers.NewQueryHandler(queryService, logger)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}

		if closeErr := db.Close(gormDB); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close database")
		}
	})

	log.Info().Str("driver", conf.DBDriver).Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
