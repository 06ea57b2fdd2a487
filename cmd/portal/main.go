package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"medicare/internal/config"
	"medicare/internal/portal"
	"medicare/internal/refdata"
	"medicare/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx := context.Background()

	st, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("store init")
	}

	reference := refdata.Default()
	if cfg.SeedFile != "" {
		reference, err = refdata.LoadFile(cfg.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.SeedFile).Msg("load seed data")
		}
	}

	app, err := portal.New(ctx, st, reference)
	if err != nil {
		log.Fatal().Err(err).Msg("portal init")
	}

	log.Info().Str("backend", cfg.StoreBackend).Msg("medicare portal ready")
	runView(ctx, app)
}

func newStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "redis":
		rs := store.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rs.Ping(ctx); err != nil {
			return nil, err
		}
		return rs, nil
	default:
		return store.NewFileStore(cfg.DataDir)
	}
}
