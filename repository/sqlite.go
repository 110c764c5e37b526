package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/CODINGDONG1211/Lifestyleapp/models"
)

// SQLiteDocuments stores one JSON document per user in a sqlite table.
type SQLiteDocuments struct {
	db  *sql.DB
	hub *hub
}

// NewSQLiteDocuments creates the document store and ensures its table
// exists.
func NewSQLiteDocuments(db *sql.DB) (*SQLiteDocuments, error) {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS documents (
		user_id TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);`

	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}

	return &SQLiteDocuments{db: db, hub: newHub()}, nil
}

// Load returns the user's document, or found=false for a new user.
func (s *SQLiteDocuments) Load(userID string) (models.Document, bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT data FROM documents WHERE user_id = ?", userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, false, nil
	}
	if err != nil {
		return models.Document{}, false, fmt.Errorf("failed to load document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return models.Document{}, false, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, true, nil
}

// Init creates an empty document for a new user.
func (s *SQLiteDocuments) Init(userID string) (models.Document, error) {
	doc := models.EmptyDocument()
	if err := s.write(userID, doc); err != nil {
		return models.Document{}, err
	}
	return doc, nil
}

// Merge applies a partial write on top of the stored document and notifies
// subscribers other than origin.
func (s *SQLiteDocuments) Merge(userID string, patch models.DocumentPatch, origin string) (models.Document, error) {
	doc, found, err := s.Load(userID)
	if err != nil {
		return models.Document{}, err
	}
	if !found {
		doc = models.EmptyDocument()
	}

	doc = applyPatch(doc, patch)
	if err := s.write(userID, doc); err != nil {
		return models.Document{}, err
	}

	s.hub.publish(userID, doc, origin)
	return doc, nil
}

// Subscribe registers for merged-document notifications for userID.
func (s *SQLiteDocuments) Subscribe(userID string) *Subscription {
	return s.hub.subscribe(userID)
}

// Close cancels all subscriptions. The *sql.DB is owned by the caller.
func (s *SQLiteDocuments) Close() error {
	s.hub.closeAll()
	return nil
}

func (s *SQLiteDocuments) write(userID string, doc models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO documents (user_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		userID, string(raw), doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
