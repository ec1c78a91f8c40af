package saved

import (
	"context"

	"careerguide/pkg/domain"
)

// Service keeps per-user bookmarks of careers, jobs, business ideas and paths.
//
//go:generate mockgen -package mocksaved -source=interface.go -destination=mock/mocksaved.go *
type Service interface {
	// Save validates ref against kind and stores it. Saving the same (kind, ref)
	// twice fails with serrors.ErrConflict.
	Save(ctx context.Context, userID domain.UserID, kind domain.SavedKind, ref, note string) (*domain.SavedItem, error)
	// List returns the user's items, newest first. An empty kind lists all.
	List(ctx context.Context, userID domain.UserID, kind domain.SavedKind) ([]domain.SavedItem, error)
	Delete(ctx context.Context, userID domain.UserID, id domain.SavedItemID) error
}
