// Command api runs the Infos Dinos REST server: a public dinosaur
// encyclopedia backed by a single JSON document, with an admin area guarded
// by bearer tokens.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/infos-dinos/dinos-api/internal/api"
	"github.com/infos-dinos/dinos-api/internal/core/domain"
	"github.com/infos-dinos/dinos-api/internal/core/service"
	"github.com/infos-dinos/dinos-api/internal/infrastructure/config"
	"github.com/infos-dinos/dinos-api/internal/infrastructure/db/jsonfile"
	"github.com/infos-dinos/dinos-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	admin, err := adminIdentity(cfg.Admin)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid admin configuration")
	}
	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set, logins will fail until it is configured")
	}

	store := jsonfile.NewStore(cfg.DataFile)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(admin, tokens, log)
	dinoService := service.NewDinosaurService(store, log)

	e := api.NewRouter(api.Dependencies{
		Dinosaurs: dinoService,
		Auth:      authService,
		Tokens:    tokens,
		Store:     store,
		Logger:    log,
	})

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("data_file", store.Path()).
			Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// adminIdentity resolves the configured administrator account. A pre-computed
// bcrypt hash wins; otherwise a plaintext password is hashed once here.
func adminIdentity(cfg config.AdminConfig) (domain.Admin, error) {
	if cfg.Username == "" {
		return domain.Admin{}, errors.New("ADMIN_USERNAME must not be empty")
	}
	if cfg.PasswordHash != "" {
		return domain.Admin{Username: cfg.Username, PasswordHash: cfg.PasswordHash}, nil
	}
	if cfg.Password == "" {
		return domain.Admin{}, errors.New("either ADMIN_PASSWORD_HASH or ADMIN_PASSWORD must be set")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Admin{}, err
	}
	return domain.Admin{Username: cfg.Username, PasswordHash: string(hash)}, nil
}
