package database_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/masresha/tgclean/internal/database"
	"github.com/masresha/tgclean/internal/table"
)

func newTestStore(t *testing.T) database.Store {
	t.Helper()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "cleaned.db"))
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	t.Cleanup(func() { database.CloseDB(db) })

	return database.NewStore(db, nil)
}

func sampleTable() table.Table {
	date := sql.NullTime{Time: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), Valid: true}
	return table.Table{
		{ID: "1", ChannelID: "100", ChannelTitle: "Shega Store", ChannelUsername: "Shega", Message: "new arrivals", ParsedDate: date},
		{ID: "2", ChannelID: "100", ChannelTitle: "Shega Store", ChannelUsername: "Shega", Message: "price update", ParsedDate: date},
	}
}

func TestReplaceMessages(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	if err := store.ReplaceMessages(ctx, sampleTable()); err != nil {
		t.Fatalf("ReplaceMessages() error = %v", err)
	}

	count, err := store.CountMessages(ctx)
	if err != nil {
		t.Fatalf("CountMessages() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountMessages() = %d, want 2", count)
	}
}

func TestReplaceMessagesReplacesPreviousLoad(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	if err := store.ReplaceMessages(ctx, sampleTable()); err != nil {
		t.Fatalf("first ReplaceMessages() error = %v", err)
	}

	smaller := sampleTable()[:1]
	if err := store.ReplaceMessages(ctx, smaller); err != nil {
		t.Fatalf("second ReplaceMessages() error = %v", err)
	}

	count, err := store.CountMessages(ctx)
	if err != nil {
		t.Fatalf("CountMessages() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CountMessages() = %d, want 1 after replacement", count)
	}
}
