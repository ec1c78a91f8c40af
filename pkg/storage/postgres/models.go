package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"careerguide/pkg/domain"

	"github.com/google/uuid"
)

type PgListing struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	Source     string    `db:"source"`
	ExternalID string    `db:"external_id"`

	Title       string          `db:"title"`
	Company     string          `db:"company"`
	Location    string          `db:"location"`
	Type        string          `db:"type"`
	Category    string          `db:"category"`
	Salary      string          `db:"salary"`
	Description string          `db:"description"`
	Skills      json.RawMessage `db:"skills"`
	URL         string          `db:"url"`

	PostedAt  time.Time    `db:"posted_at"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgListing) ToDomain() (*domain.JobListing, error) {
	var skills []string
	if len(p.Skills) > 0 {
		if err := json.Unmarshal(p.Skills, &skills); err != nil {
			return nil, fmt.Errorf("could not unmarshal listing skills: %w", err)
		}
	}

	return &domain.JobListing{
		ID:          domain.JobID(p.ID),
		Source:      p.Source,
		ExternalID:  p.ExternalID,
		Title:       p.Title,
		Company:     p.Company,
		Location:    p.Location,
		Type:        domain.JobType(p.Type),
		Category:    p.Category,
		Salary:      p.Salary,
		Description: p.Description,
		Skills:      skills,
		URL:         p.URL,
		PostedAt:    p.PostedAt.UTC(),
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.Time.UTC(),
	}, nil
}

func (p *PgListing) FromDomain(l domain.JobListing) error {
	skills := l.Skills
	if skills == nil {
		skills = []string{}
	}
	raw, err := json.Marshal(skills)
	if err != nil {
		return fmt.Errorf("could not marshal listing skills: %w", err)
	}

	*p = PgListing{
		ID:          uuid.UUID(l.ID),
		Source:      l.Source,
		ExternalID:  l.ExternalID,
		Title:       l.Title,
		Company:     l.Company,
		Location:    l.Location,
		Type:        string(l.Type),
		Category:    l.Category,
		Salary:      l.Salary,
		Description: l.Description,
		Skills:      raw,
		URL:         l.URL,
		PostedAt:    l.PostedAt,
	}

	return nil
}

func domainListingsToPg(listings []domain.JobListing) ([]PgListing, error) {
	out := make([]PgListing, len(listings))
	for i := range out {
		if err := out[i].FromDomain(listings[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgListingsToDomain(rows []PgListing) ([]domain.JobListing, error) {
	out := make([]domain.JobListing, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgSavedItem struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	UserID    uuid.UUID `db:"user_id"`
	Kind      string    `db:"kind"`
	Ref       string    `db:"ref"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSavedItem) ToDomain() *domain.SavedItem {
	return &domain.SavedItem{
		ID:        domain.SavedItemID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Kind:      domain.SavedKind(p.Kind),
		Ref:       p.Ref,
		Note:      p.Note,
		CreatedAt: p.CreatedAt.UTC(),
	}
}

func (p *PgSavedItem) FromDomain(item domain.SavedItem) {
	*p = PgSavedItem{
		ID:     uuid.UUID(item.ID),
		UserID: uuid.UUID(item.UserID),
		Kind:   string(item.Kind),
		Ref:    item.Ref,
		Note:   item.Note,
	}
}
