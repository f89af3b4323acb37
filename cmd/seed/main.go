// Command seed creates the default consorcio participants in an empty
// database and, when SEED_PASSWORD is set, a login for each of them.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mmynk/consorcio/internal/auth"
	"github.com/mmynk/consorcio/internal/config"
	"github.com/mmynk/consorcio/internal/models"
	"github.com/mmynk/consorcio/internal/storage"
	"github.com/mmynk/consorcio/internal/storage/sqlite"
	"github.com/mmynk/consorcio/pkg/logging"
)

var defaultParticipants = []models.Participant{
	{Name: "María González", Email: "maria@email.com", Phone: "+54 11 1234-5678", Unit: "2A", Active: true},
	{Name: "Carlos Rodriguez", Email: "carlos@email.com", Phone: "+54 11 2345-6789", Unit: "1B", Active: true},
	{Name: "Ana Martínez", Email: "ana@email.com", Phone: "+54 11 3456-7890", Unit: "4D", Active: true},
	{Name: "Juan Pérez", Email: "juan@email.com", Phone: "+54 11 4567-8901", Unit: "3C", Active: true},
}

func main() {
	cfg := config.Load()
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := seed(context.Background(), store, os.Getenv("SEED_PASSWORD")); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, store storage.Store, password string) error {
	existing, err := store.ListParticipants(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Info("Participants already present, nothing to seed", "count", len(existing))
		return nil
	}

	authenticator := auth.NewPasswordAuthenticator(store)
	for _, p := range defaultParticipants {
		if err := store.CreateParticipant(ctx, &p); err != nil {
			return err
		}
		slog.Info("Participant created", "name", p.Name, "unit", p.Unit, "participant_id", p.ID)

		if password == "" {
			continue
		}
		_, err := authenticator.Register(ctx, p.ID, p.Email, password)
		if errors.Is(err, auth.ErrEmailExists) {
			slog.Warn("Login already exists", "email", p.Email)
			continue
		}
		if err != nil {
			return err
		}
		slog.Info("Login created", "email", p.Email)
	}

	return nil
}
