// Package saved stores the careers, jobs, ideas and paths a user bookmarked.
package saved

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"careerguide/internal/careermap"
	"careerguide/internal/jobboard"
	"careerguide/pkg/domain"
	"careerguide/pkg/serrors"
	"careerguide/pkg/storage"

	"github.com/google/uuid"
)

// MaxNoteLength is the maximum number of characters of a note.
const MaxNoteLength = 500

type service struct {
	storage storage.Storage
	guide   careermap.Guide
	board   jobboard.Board
}

// New creates a Service validating refs with guide and board.
func New(strg storage.Storage, guide careermap.Guide, board jobboard.Board) Service {
	return &service{storage: strg, guide: guide, board: board}
}

// ParseKind accepts kinds in any case. The empty string is accepted.
func ParseKind(s string) (domain.SavedKind, error) {
	k := domain.SavedKind(strings.ToLower(strings.TrimSpace(s)))
	if k != "" && !k.Valid() {
		return "", serrors.With(serrors.ErrBadRequest, "invalid saved item kind %q", s)
	}

	return k, nil
}

// PathRef builds the ref of a saved path.
func PathRef(stage domain.StageID, goal domain.GoalID) string {
	return string(stage) + ":" + string(goal)
}

// canonicalRef checks that ref points at an existing entity of kind and
// returns its canonical form.
func (s *service) canonicalRef(ctx context.Context, kind domain.SavedKind, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", serrors.With(serrors.ErrBadRequest, "ref is required")
	}

	switch kind {
	case domain.SavedKindCareer:
		c, err := s.guide.Career(ctx, ref)
		if err != nil {
			return "", err //nolint: wrapcheck
		}

		return c.ID, nil
	case domain.SavedKindIdea:
		idea, err := s.guide.Idea(ctx, ref)
		if err != nil {
			return "", err //nolint: wrapcheck
		}

		return idea.ID, nil
	case domain.SavedKindJob:
		id, err := uuid.Parse(ref)
		if err != nil {
			return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid job id")
		}
		if _, err := s.board.Listing(ctx, domain.JobID(id)); err != nil {
			return "", err //nolint: wrapcheck
		}

		return id.String(), nil
	case domain.SavedKindPath:
		stage, goal, ok := strings.Cut(ref, ":")
		if !ok {
			return "", serrors.With(serrors.ErrBadRequest, "path ref must be <stage>:<goal>")
		}
		path, err := s.guide.GeneratePath(ctx, domain.StageID(stage), domain.GoalID(goal))
		if err != nil {
			return "", err //nolint: wrapcheck
		}

		return PathRef(path.Start, path.Goal), nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "invalid saved item kind %q", kind)
	}
}

func (s *service) Save(ctx context.Context,
	userID domain.UserID,
	kind domain.SavedKind,
	ref, note string) (*domain.SavedItem, error) {
	if userID.IsZero() {
		return nil, serrors.With(serrors.ErrUnauthorized, "user is required")
	}
	kind, err := ParseKind(string(kind))
	if err != nil {
		return nil, err
	}
	if kind == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "kind is required")
	}
	note = strings.TrimSpace(note)
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return nil, serrors.With(serrors.ErrBadRequest, "note is longer than %d characters", MaxNoteLength)
	}

	ref, err = s.canonicalRef(ctx, kind, ref)
	if err != nil {
		return nil, err
	}

	item, err := s.storage.StoreSavedItem(ctx, domain.SavedItem{
		UserID: userID,
		Kind:   kind,
		Ref:    ref,
		Note:   note,
	})
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "%s %q is already saved", kind, ref)
		}

		return nil, fmt.Errorf("could not store saved item: %w", err)
	}

	return item, nil
}

func (s *service) List(ctx context.Context, userID domain.UserID, kind domain.SavedKind) ([]domain.SavedItem, error) {
	if userID.IsZero() {
		return nil, serrors.With(serrors.ErrUnauthorized, "user is required")
	}
	kind, err := ParseKind(string(kind))
	if err != nil {
		return nil, err
	}

	items, err := s.storage.SavedItems(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("could not get saved items: %w", err)
	}

	return items, nil
}

// Delete removes a saved item of the user. Items of other users are reported
// as not found.
func (s *service) Delete(ctx context.Context, userID domain.UserID, id domain.SavedItemID) error {
	if userID.IsZero() {
		return serrors.With(serrors.ErrUnauthorized, "user is required")
	}
	res, err := s.storage.DeleteSavedItem(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete saved item: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "saved item not found")
	}

	return nil
}
