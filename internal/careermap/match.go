package careermap

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"careerguide/pkg/catalog"
	"careerguide/pkg/domain"
	"careerguide/pkg/serrors"
)

// ScoreCareers scores every career against the selected (normalized)
// interests. An interest counts once for a career when it maps to the
// career's stream or is one of the career's own interest tags. Careers with no
// match are dropped; the rest are ordered by score and then by name.
func ScoreCareers(snap *catalog.Snapshot, selected []string) []domain.CareerMatch {
	matches := make([]domain.CareerMatch, 0, len(snap.Dataset.Careers))
	for _, career := range snap.Dataset.Careers {
		var matched []string
		for _, interest := range selected {
			if slices.Contains(career.Interests, interest) ||
				slices.ContainsFunc(snap.Dataset.InterestStreams[interest], func(s string) bool {
					return strings.EqualFold(s, career.Stream)
				}) {
				matched = append(matched, interest)
			}
		}
		if len(matched) == 0 {
			continue
		}

		matches = append(matches, domain.CareerMatch{
			Career:           career,
			Score:            len(matched),
			MatchedInterests: matched,
		})
	}

	slices.SortStableFunc(matches, func(a, b domain.CareerMatch) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Career.Name, b.Career.Name)
	})

	return matches
}

func (g *guide) FindCareersByInterests(ctx context.Context, interests []string, limit int) ([]domain.CareerMatch, error) {
	ctx, done := g.observe(ctx, "find_careers")

	matches, err := g.findCareers(ctx, interests, limit)
	done(err)

	return matches, err
}

func (g *guide) findCareers(ctx context.Context, interests []string, limit int) ([]domain.CareerMatch, error) {
	selected := catalog.NormalizeIDs(interests)
	if len(selected) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "at least one interest is required")
	}

	snap, err := g.snapshot()
	if err != nil {
		return nil, err
	}

	// The ranking is cached per interest set; every limit slices the same one.
	slices.Sort(selected)
	key := g.cacheKey(snap, "match", strings.Join(selected, ","))

	var matches []domain.CareerMatch
	if !g.cacheGet(ctx, key, &matches) {
		matches = ScoreCareers(snap, selected)
		g.cacheSet(ctx, key, matches)
	}

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}
