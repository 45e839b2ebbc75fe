package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/inotebook/config"
	"github.com/oksasatya/inotebook/internal/application"
	"github.com/oksasatya/inotebook/internal/container"
	"github.com/oksasatya/inotebook/internal/domain/entity"
	"github.com/oksasatya/inotebook/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)
	ctx := context.Background()

	c, err := container.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}
	defer c.Close()

	users := c.UserService()
	notes := c.NoteService()

	email := "demo@inotebook.local"
	password := "password123"
	name := "demoUser"

	token, err := users.Register(ctx, application.RegisterInput{Name: name, Email: email, Password: password})
	if errors.Is(err, application.ErrDuplicateEmail) {
		token, err = users.Login(ctx, application.LoginInput{Email: email, Password: password})
	}
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	subject, err := c.Tokens.Verify(token)
	if err != nil {
		log.Fatalf("seeded token does not verify: %v", err)
	}
	owner := entity.UserID(subject)
	fmt.Printf("seeded user: id=%s email=%s name=%s password=%s\n", owner, email, name, password)

	existing, err := notes.ListNotes(ctx, owner)
	if err != nil {
		log.Fatalf("failed to list notes: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("user already has %d notes, skipping\n", len(existing))
		return
	}

	samples := []application.NoteInput{
		{Title: "Groceries", Description: "Buy milk and eggs", Tag: "Home"},
		{Title: "Shop", Description: "Buy bread"},
		{Title: "Standup", Description: "Prepare weekly status notes", Tag: "Work"},
	}
	for _, in := range samples {
		n, err := notes.AddNote(ctx, owner, in)
		if err != nil {
			log.Fatalf("failed to seed note %q: %v", in.Title, err)
		}
		fmt.Printf("seeded note: id=%s title=%s tag=%s\n", n.ID, n.Title, n.Tag)
	}
	fmt.Printf("auth-token: %s\n", token)
}
