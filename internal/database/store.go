package database

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/masresha/tgclean/internal/table"
)

// messageRow is the database shape of a cleaned export record.
// Column names match the cleaned CSV output.
type messageRow struct {
	MessageID       string       `db:"message_id"`
	ChannelID       string       `db:"channel_id"`
	ChannelTitle    string       `db:"channel_title"`
	ChannelUsername string       `db:"channel_username"`
	Message         string       `db:"message"`
	Date            sql.NullTime `db:"date"`
	MediaPath       string       `db:"media_path"`
}

// Store defines the database operations for cleaned export data.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// ReplaceMessages replaces the stored cleaned rows with the given
	// table in a single transaction.
	ReplaceMessages(ctx context.Context, data table.Table) error

	// CountMessages returns the number of stored cleaned rows.
	CountMessages(ctx context.Context) (int, error)
}

// sqlxStore implements Store using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a Store backed by sqlx. It requires a connected
// sqlx.DB instance; a nil logger is replaced with a discarding one.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxStore) ReplaceMessages(ctx context.Context, data table.Table) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM messages`); err != nil {
		return fmt.Errorf("failed to clear messages: %w", err)
	}

	const insertQuery = `
		INSERT INTO messages (message_id, channel_id, channel_title, channel_username, message, date, media_path)
		VALUES (:message_id, :channel_id, :channel_title, :channel_username, :message, :date, :media_path)`

	for _, rec := range data {
		row := messageRow{
			MessageID:       rec.ID,
			ChannelID:       rec.ChannelID,
			ChannelTitle:    rec.ChannelTitle,
			ChannelUsername: rec.ChannelUsername,
			Message:         rec.Message,
			Date:            rec.ParsedDate,
			MediaPath:       rec.MediaPath,
		}
		if _, err := tx.NamedExecContext(ctx, insertQuery, row); err != nil {
			return fmt.Errorf("failed to insert message %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("Cleaned messages stored", "rows", len(data))
	return nil
}

func (s *sqlxStore) CountMessages(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM messages`); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}
