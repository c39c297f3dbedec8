package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"userregistry/database"
	"userregistry/internal/agify"
	"userregistry/internal/cache"
	"userregistry/internal/controllers"
	"userregistry/internal/metrics"
	"userregistry/internal/repository"
	"userregistry/internal/services"
	"userregistry/routes"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}
	database.MonitorDBConnections(ctx, db, 10*time.Second)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	predictor, closePredictor := newPredictor(ctx, m)
	defer closePredictor()

	repo := repository.NewRegistrationRepository(db)
	submissions := services.NewSubmissionService(repo, predictor, m)

	gin.SetMode(gin.ReleaseMode)
	router := routes.NewRouter(routes.Handlers{
		Registrations: controllers.NewRegistrationController(submissions, repo),
		Exports:       controllers.NewExportController(repo),
		Locations:     controllers.NewLocationController(),
		Age:           controllers.NewAgeController(predictor),
		Gatherer:      reg,
		CORSOrigins:   cfg.CORSOrigins,
	})

	server := &http.Server{
		Addr:           cfg.Addr(),
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("Server starting")
		log.Info().Str("docs", "http://localhost"+server.Addr+"/swagger/index.html").Msg("API documentation")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newPredictor returns the agify client, wrapped in the redis age cache when
// REDIS_URL is set and reachable.
func newPredictor(ctx context.Context, m *metrics.Metrics) (agify.Predictor, func()) {
	client := agify.NewClient(cfg.AgifyBaseURL, cfg.AgifyTimeout, m)
	if cfg.RedisURL == "" {
		return client, func() {}
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Age cache unavailable, using agify directly")
		return client, func() {}
	}

	log.Info().Dur("ttl", cfg.RedisAgeTTL).Msg("Age cache enabled")
	return agify.NewCachedPredictor(client, redisClient, cfg.RedisAgeTTL, m), func() {
		_ = redisClient.Close()
	}
}
