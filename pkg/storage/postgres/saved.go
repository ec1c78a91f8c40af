package postgres

import (
	"context"
	"fmt"

	"careerguide/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	savedItemsTable = "saved_items"
)

func (p *PgSQL) StoreSavedItem(ctx context.Context, item domain.SavedItem) (*domain.SavedItem, error) {
	var row PgSavedItem
	row.FromDomain(item)

	var stored PgSavedItem
	if _, err := p.Builder.Insert(savedItemsTable).
		Rows(row).
		Returning(&PgSavedItem{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store saved item into pg: %w", asConflict(err))
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) SavedItems(ctx context.Context, userID domain.UserID, kind domain.SavedKind) ([]domain.SavedItem, error) {
	w := []goqu.Expression{goqu.I("user_id").Eq(uuid.UUID(userID))}
	if kind != "" {
		w = append(w, goqu.I("kind").Eq(string(kind)))
	}

	var rows []PgSavedItem
	if err := p.Builder.From(savedItemsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch saved items from pg: %w", err)
	}

	out := make([]domain.SavedItem, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) DeleteSavedItem(ctx context.Context,
	userID domain.UserID,
	id domain.SavedItemID,
) (*domain.SavedItem, error) {
	var row PgSavedItem
	found, err := p.Builder.Delete(savedItemsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgSavedItem{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete saved item in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
