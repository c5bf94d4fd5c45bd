package main

import (
	"context"
	"errors"
	"log"
	"time"

	authadapters "notes_backend/internal/feature/auth/adapters"
	authentity "notes_backend/internal/feature/auth/domain/entity"
	authusecase "notes_backend/internal/feature/auth/usecase"
	noteadapters "notes_backend/internal/feature/notes/adapters"
	noteentity "notes_backend/internal/feature/notes/domain/entity"
	"notes_backend/internal/platform/config"
	"notes_backend/internal/platform/db"
	"notes_backend/internal/platform/hash"
)

// seed populates the database with a demo account and a few starter notes
// so a fresh environment has something to look at.
func main() {
	cfg := config.Load()
	cfg.RunMigrations = true
	gormDB := db.Open(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	userRepo := authadapters.NewUserRepository(gormDB)
	noteRepo := noteadapters.NewNoteRepository(gormDB)
	hasher := hash.NewBcryptHasher(cfg.BcryptCost)

	const demoEmail = "demo@example.com"
	if _, err := userRepo.FindByEmail(ctx, demoEmail); err == nil {
		log.Println("seed: demo user already present, nothing to do")
		return
	} else if !errors.Is(err, authusecase.ErrUserNotFound) {
		log.Fatal("seed: failed to check for demo user:", err)
	}

	hashed, err := hasher.Hash("demo1234")
	if err != nil {
		log.Fatal("seed: failed to hash demo password:", err)
	}

	user := &authentity.User{Name: "Demo User", Email: demoEmail, Password: hashed}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatal("seed: failed to create demo user:", err)
	}

	notes := []noteentity.Note{
		{UserID: user.ID, Title: "Welcome Note", Content: "This is your first note!"},
		{UserID: user.ID, Title: "Todo", Content: "Build Notes App UI"},
		{UserID: user.ID, Title: "Reminder", Content: "Drink Water"},
	}
	for i := range notes {
		if err := noteRepo.Create(ctx, &notes[i]); err != nil {
			log.Fatal("seed: failed to create note:", err)
		}
	}

	log.Println("seed ok")
}
