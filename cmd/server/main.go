package main

import (
	"log"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"notes_backend/internal/app/di"
	"notes_backend/internal/app/router"
	authadapters "notes_backend/internal/feature/auth/adapters"
	authhandler "notes_backend/internal/feature/auth/transport/handler"
	authusecase "notes_backend/internal/feature/auth/usecase"
	notehandler "notes_backend/internal/feature/notes/transport/handler"
	noteusecase "notes_backend/internal/feature/notes/usecase"
	"notes_backend/internal/platform/config"
	"notes_backend/internal/platform/db"
	"notes_backend/internal/platform/hash"
	jwtmw "notes_backend/internal/platform/jwt"
	platformredis "notes_backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecretIsDefault {
		slog.Warn("JWT_SECRET is not set, using an insecure default. Set a strong secret in production.")
	}

	gormDB := db.Open(cfg)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(gormDB)
	noteRepo := di.NewNoteRepository(rdb, gormDB, cfg.CacheTTL)

	// Usecase
	generator := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)
	hasher := hash.NewBcryptHasher(cfg.BcryptCost)
	authUC := authusecase.NewAuthUsecase(userRepo, generator, hasher)
	noteUC := noteusecase.NewNotesUsecase(noteRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	noteH := notehandler.NewNoteHandler(noteUC)

	verifier := jwtmw.NewVerifier(cfg.JWTSecret)
	r := router.NewRouter(authH, noteH, verifier)

	slog.Info("starting server", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
