package domain

import "github.com/google/uuid"

// UserID uniquely identifies a user within the system. It is the subject of
// the bearer token and owns saved items.
type UserID uuid.UUID

// IsZero reports whether the ID is unset, e.g. on an unauthenticated request.
func (id UserID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func (id UserID) String() string { return uuid.UUID(id).String() }
