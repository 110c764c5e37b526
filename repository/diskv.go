package repository

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"github.com/CODINGDONG1211/Lifestyleapp/models"
)

// FileDocuments stores one JSON document per user as a file on disk,
// through diskv. Useful for single-binary deployments without sqlite.
type FileDocuments struct {
	d   *diskv.Diskv
	mu  sync.Mutex
	hub *hub
}

// NewFileDocuments creates a file-backed document store rooted at baseDir.
func NewFileDocuments(baseDir string) *FileDocuments {
	d := diskv.New(diskv.Options{
		BasePath:     baseDir,
		CacheSizeMax: 1024 * 1024,
	})
	return &FileDocuments{d: d, hub: newHub()}
}

// Load returns the user's document, or found=false for a new user.
func (s *FileDocuments) Load(userID string) (models.Document, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(userID)
}

// Init creates an empty document for a new user.
func (s *FileDocuments) Init(userID string) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := models.EmptyDocument()
	if err := s.write(userID, doc); err != nil {
		return models.Document{}, err
	}
	return doc, nil
}

// Merge applies a partial write on top of the stored document and notifies
// subscribers other than origin.
func (s *FileDocuments) Merge(userID string, patch models.DocumentPatch, origin string) (models.Document, error) {
	s.mu.Lock()
	doc, found, err := s.load(userID)
	if err != nil {
		s.mu.Unlock()
		return models.Document{}, err
	}
	if !found {
		doc = models.EmptyDocument()
	}

	doc = applyPatch(doc, patch)
	if err := s.write(userID, doc); err != nil {
		s.mu.Unlock()
		return models.Document{}, err
	}
	s.mu.Unlock()

	s.hub.publish(userID, doc, origin)
	return doc, nil
}

// Subscribe registers for merged-document notifications for userID.
func (s *FileDocuments) Subscribe(userID string) *Subscription {
	return s.hub.subscribe(userID)
}

// Close cancels all subscriptions.
func (s *FileDocuments) Close() error {
	s.hub.closeAll()
	return nil
}

func (s *FileDocuments) load(userID string) (models.Document, bool, error) {
	if !s.d.Has(s.key(userID)) {
		return models.Document{}, false, nil
	}

	raw, err := s.d.Read(s.key(userID))
	if err != nil {
		return models.Document{}, false, fmt.Errorf("failed to read document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.Document{}, false, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, true, nil
}

func (s *FileDocuments) write(userID string, doc models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := s.d.Write(s.key(userID), raw); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func (s *FileDocuments) key(userID string) string {
	return "user-" + userID + ".json"
}
