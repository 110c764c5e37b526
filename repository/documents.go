// Package repository persists users and the per-user state documents.
package repository

import (
	"time"

	"github.com/CODINGDONG1211/Lifestyleapp/models"
)

// DocumentStore is the remote mirror of session state: one document per
// user, partial merge writes, and a live-update feed per user.
//
// Merge applies a patch to the stored document and notifies every
// subscriber for that user except the one identified by origin, so a
// session does not receive echoes of its own writes. A second session for
// the same user (another device) does receive them.
type DocumentStore interface {
	// Load returns the user's document, or found=false when the user has
	// no document yet.
	Load(userID string) (doc models.Document, found bool, err error)
	// Init creates an empty document for a new user.
	Init(userID string) (models.Document, error)
	// Merge applies a partial write and returns the resulting document.
	Merge(userID string, patch models.DocumentPatch, origin string) (models.Document, error)
	// Subscribe registers for merged-document notifications for userID.
	Subscribe(userID string) *Subscription
	Close() error
}

// applyPatch merges a partial write into a document. Nil families are left
// untouched; non-nil families replace the stored ones wholesale.
func applyPatch(doc models.Document, patch models.DocumentPatch) models.Document {
	if patch.Tasks != nil {
		doc.Tasks = *patch.Tasks
	}
	if patch.Habits != nil {
		doc.Habits = *patch.Habits
	}
	if patch.Workouts != nil {
		doc.Workouts = *patch.Workouts
	}
	if patch.Events != nil {
		doc.Events = *patch.Events
	}
	doc.UpdatedAt = time.Now().UTC()
	return doc
}
