package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedItemID identifies a saved item.
type SavedItemID uuid.UUID

// SavedKind is what a saved item refers to.
type SavedKind string

const (
	SavedKindCareer SavedKind = "career"
	SavedKindJob    SavedKind = "job"
	SavedKindIdea   SavedKind = "idea"
	// SavedKindPath refs are "<stage>:<goal>" pairs.
	SavedKindPath SavedKind = "path"
)

// Valid reports whether k is one of the known kinds.
func (k SavedKind) Valid() bool {
	switch k {
	case SavedKindCareer, SavedKindJob, SavedKindIdea, SavedKindPath:
		return true
	default:
		return false
	}
}

// SavedItem is a bookmark a user keeps across visits.
type SavedItem struct {
	ID     SavedItemID
	UserID UserID
	Kind   SavedKind
	// Ref is the ID of the referenced entity.
	Ref       string
	Note      string
	CreatedAt time.Time
}
