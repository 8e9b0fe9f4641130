package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/andy/reconnect/internal/storage"
)

// Store keeps an address book document in the database. Every save
// replaces all rows; row order is kept in the position column.
type Store struct {
	db   *DB
	path string
}

// NewStore wraps an opened, migrated database.
func NewStore(database *DB, path string) *Store {
	return &Store{db: database, path: path}
}

// OpenStore opens the database at path, applies migrations and wraps it.
func OpenStore(ctx context.Context, path, password string) (*Store, error) {
	database, err := Open(path, password)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return NewStore(database, path), nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Close() error { return s.db.Close() }

// Load reads the document back in saved order. It returns
// storage.ErrNoData if nothing was ever saved.
func (s *Store) Load(ctx context.Context) (storage.Document, error) {
	var saved int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM book_state").Scan(&saved); err != nil {
		return storage.Document{}, fmt.Errorf("failed to read book state: %w", err)
	}
	if saved == 0 {
		return storage.Document{}, storage.ErrNoData
	}

	var doc storage.Document
	var err error
	if doc.Clients, err = s.loadClients(ctx); err != nil {
		return storage.Document{}, err
	}
	if doc.Properties, err = s.loadProperties(ctx); err != nil {
		return storage.Document{}, err
	}
	if doc.Deals, err = s.loadDeals(ctx); err != nil {
		return storage.Document{}, err
	}
	if doc.Events, err = s.loadEvents(ctx); err != nil {
		return storage.Document{}, err
	}
	return doc, nil
}

func (s *Store) loadClients(ctx context.Context) ([]storage.ClientRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, phone, email, address
		FROM clients
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var out []storage.ClientRecord
	for rows.Next() {
		var r storage.ClientRecord
		var email, address sql.NullString
		if err := rows.Scan(&r.Name, &r.Phone, &email, &address); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		r.Email, r.Address = email.String, address.String
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) loadProperties(ctx context.Context) ([]storage.PropertyRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, address, price, size, description, owner
		FROM properties
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var out []storage.PropertyRecord
	for rows.Next() {
		var r storage.PropertyRecord
		var size sql.NullInt64
		var description sql.NullString
		if err := rows.Scan(&r.Name, &r.Address, &r.Price, &size, &description, &r.Owner); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		r.Size, r.Description = size.Int64, description.String
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) loadDeals(ctx context.Context) ([]storage.DealRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT property, buyer, seller, price, status
		FROM deals
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query deals: %w", err)
	}
	defer rows.Close()

	var out []storage.DealRecord
	for rows.Next() {
		var r storage.DealRecord
		if err := rows.Scan(&r.Property, &r.Buyer, &r.Seller, &r.Price, &r.Status); err != nil {
			return nil, fmt.Errorf("failed to scan deal: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) loadEvents(ctx context.Context) ([]storage.EventRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT heading, datetime, property, client, note
		FROM events
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var out []storage.EventRecord
	for rows.Next() {
		var r storage.EventRecord
		var note sql.NullString
		if err := rows.Scan(&r.Heading, &r.DateTime, &r.Property, &r.Client, &note); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		r.Note = note.String
		out = append(out, r)
	}
	return out, rows.Err()
}

// Save replaces the stored document in a single transaction.
func (s *Store) Save(ctx context.Context, doc storage.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"clients", "properties", "deals", "events"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i, r := range doc.Clients {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO clients (position, name, phone, email, address) VALUES (?, ?, ?, ?, ?)`,
			i, r.Name, r.Phone, nullString(r.Email), nullString(r.Address))
		if err != nil {
			return fmt.Errorf("failed to save client %q: %w", r.Name, err)
		}
	}
	for i, r := range doc.Properties {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO properties (position, name, address, price, size, description, owner) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, r.Name, r.Address, r.Price, nullInt(r.Size), nullString(r.Description), r.Owner)
		if err != nil {
			return fmt.Errorf("failed to save property %q: %w", r.Name, err)
		}
	}
	for i, r := range doc.Deals {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO deals (position, property, buyer, seller, price, status) VALUES (?, ?, ?, ?, ?, ?)`,
			i, r.Property, r.Buyer, r.Seller, r.Price, r.Status)
		if err != nil {
			return fmt.Errorf("failed to save deal for %q: %w", r.Property, err)
		}
	}
	for i, r := range doc.Events {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO events (position, heading, datetime, property, client, note) VALUES (?, ?, ?, ?, ?, ?)`,
			i, r.Heading, r.DateTime, r.Property, r.Client, nullString(r.Note))
		if err != nil {
			return fmt.Errorf("failed to save event for %q: %w", r.Property, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO book_state (id, saved_at) VALUES (1, datetime('now'))
		 ON CONFLICT(id) DO UPDATE SET saved_at = excluded.saved_at`)
	if err != nil {
		return fmt.Errorf("failed to record save: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}

var _ storage.Storage = (*Store)(nil)
