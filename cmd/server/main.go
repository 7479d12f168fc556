package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/usermgmt/user-registry/internal/core/domain"
	"github.com/usermgmt/user-registry/internal/core/ports"
	"github.com/usermgmt/user-registry/internal/core/service"
	"github.com/usermgmt/user-registry/internal/infrastructure/config"
	"github.com/usermgmt/user-registry/internal/infrastructure/store/memstore"
	"github.com/usermgmt/user-registry/internal/ops"
	"github.com/usermgmt/user-registry/internal/protocol"
	"github.com/usermgmt/user-registry/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Msg("starting user registry server")

	store := memstore.NewUserStore()
	registry := service.NewRegistryService(store, log)
	dispatcher := protocol.NewDispatcher(registry, log)
	server := protocol.NewServer(cfg.ListenAddr, cfg.MaxRequestBytes, dispatcher, log)
	opsServer := ops.NewServer(cfg.OpsAddr)

	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "registry",
			Name:      "users_current",
			Help:      "Number of users currently stored in the registry.",
		},
		func() float64 { return float64(store.Count(context.Background())) },
	))

	if cfg.SeedUsers {
		if err := seedUsers(ctx, registry); err != nil {
			log.Fatal().Err(err).Msg("failed to seed users")
		}
	}

	errCh := make(chan error, 2)
	go func() { errCh <- server.ListenAndServe(ctx) }()
	go func() { errCh <- opsServer.Start() }()
	log.Info().Str("addr", cfg.ListenAddr).Str("ops_addr", cfg.OpsAddr).Msg("server started")

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server failed")
		}
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("ops server shutdown")
	}
	log.Info().Msg("server stopped")
}

// seedUsers creates the default accounts: an Admin plus one regular user.
// The registry starts empty otherwise (state is volatile).
func seedUsers(ctx context.Context, registry *service.RegistryService) error {
	admin, err := registry.CreateUser(ctx, ports.CreateUserInput{
		Username:  "admin",
		Email:     "admin@example.com",
		FirstName: "System",
		LastName:  "Administrator",
	})
	if err != nil {
		return err
	}
	if _, err := registry.SetUserRole(ctx, admin.ID, domain.RoleAdmin); err != nil {
		return err
	}

	_, err = registry.CreateUser(ctx, ports.CreateUserInput{
		Username:  "john_doe",
		Email:     "john@example.com",
		FirstName: "John",
		LastName:  "Doe",
	})
	return err
}
