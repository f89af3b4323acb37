package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mmynk/consorcio/internal/storage/sqlite"
)

func TestSeed(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	if err := seed(ctx, store, "password123"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	// A second run leaves the data untouched.
	if err := seed(ctx, store, "password123"); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	participants, err := store.ListParticipants(ctx)
	if err != nil {
		t.Fatalf("ListParticipants failed: %v", err)
	}
	if len(participants) != len(defaultParticipants) {
		t.Fatalf("expected %d participants, got %d", len(defaultParticipants), len(participants))
	}

	user, err := store.GetUserByEmail(ctx, "ana@email.com")
	if err != nil {
		t.Fatalf("expected a login for Ana: %v", err)
	}
	if !user.Active {
		t.Error("seeded login should be active")
	}
}
