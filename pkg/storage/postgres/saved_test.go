package postgres_test

import (
	"context"
	"testing"

	"careerguide/pkg/domain"
	"careerguide/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_SavedItems(t *testing.T) {
	t.Parallel()

	pgSQL := newTestStorage(t)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())

	stored, err := pgSQL.StoreSavedItem(ctx, domain.SavedItem{
		UserID: userID,
		Kind:   domain.SavedKindPath,
		Ref:    "class_10:medicine",
		Note:   "ask about NEET coaching",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
	require.False(t, stored.CreatedAt.IsZero())

	_, err = pgSQL.StoreSavedItem(ctx, domain.SavedItem{UserID: userID, Kind: domain.SavedKindPath, Ref: "class_10:medicine"})
	require.ErrorIs(t, err, storage.ErrConflict)

	_, err = pgSQL.StoreSavedItem(ctx, domain.SavedItem{UserID: userID, Kind: domain.SavedKindCareer, Ref: "doctor"})
	require.NoError(t, err)

	all, err := pgSQL.SavedItems(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	paths, err := pgSQL.SavedItems(ctx, userID, domain.SavedKindPath)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, "ask about NEET coaching", paths[0].Note)

	none, err := pgSQL.SavedItems(ctx, domain.UserID(uuid.New()), "")
	require.NoError(t, err)
	require.Empty(t, none)

	deleted, err := pgSQL.DeleteSavedItem(ctx, domain.UserID(uuid.New()), stored.ID)
	require.NoError(t, err)
	require.Nil(t, deleted)

	deleted, err = pgSQL.DeleteSavedItem(ctx, userID, stored.ID)
	require.NoError(t, err)
	require.Equal(t, stored.Ref, deleted.Ref)

	deleted, err = pgSQL.DeleteSavedItem(ctx, userID, stored.ID)
	require.NoError(t, err)
	require.Nil(t, deleted)
}
