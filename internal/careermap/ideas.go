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

var investmentRank = map[domain.InvestmentLevel]int{ //nolint: gochecknoglobals
	domain.InvestmentLow:    1,
	domain.InvestmentMedium: 2,
	domain.InvestmentHigh:   3,
}

// ParseInvestment normalizes s into an InvestmentLevel. The empty string is
// accepted and means no limit.
func ParseInvestment(s string) (domain.InvestmentLevel, error) {
	level := domain.InvestmentLevel(catalog.NormalizeID(s))
	if level == "" {
		return "", nil
	}
	if _, ok := investmentRank[level]; !ok {
		return "", serrors.With(serrors.ErrBadRequest, "invalid investment level %q", s)
	}

	return level, nil
}

func (g *guide) BusinessIdeas(ctx context.Context, filter IdeaFilter) ([]domain.IdeaMatch, error) {
	_, done := g.observe(ctx, "business_ideas")

	ideas, err := g.businessIdeas(filter)
	done(err)

	return ideas, err
}

func (g *guide) businessIdeas(filter IdeaFilter) ([]domain.IdeaMatch, error) {
	maxRank := 0
	if filter.MaxInvestment != "" {
		level, err := ParseInvestment(string(filter.MaxInvestment))
		if err != nil {
			return nil, err
		}
		maxRank = investmentRank[level]
	}

	snap, err := g.snapshot()
	if err != nil {
		return nil, err
	}

	category := strings.TrimSpace(filter.Category)
	selected := catalog.NormalizeIDs(filter.Interests)

	out := make([]domain.IdeaMatch, 0, len(snap.Dataset.BusinessIdeas))
	for _, idea := range snap.Dataset.BusinessIdeas {
		if category != "" && !strings.EqualFold(idea.Category, category) {
			continue
		}
		if maxRank > 0 && investmentRank[idea.Investment] > maxRank {
			continue
		}

		match := domain.IdeaMatch{Idea: idea}
		for _, interest := range selected {
			if slices.Contains(idea.Interests, interest) {
				match.MatchedInterests = append(match.MatchedInterests, interest)
			}
		}
		match.Score = len(match.MatchedInterests)
		if len(selected) > 0 && match.Score == 0 {
			continue
		}

		out = append(out, match)
	}

	if len(selected) > 0 {
		slices.SortStableFunc(out, func(a, b domain.IdeaMatch) int {
			if c := cmp.Compare(b.Score, a.Score); c != 0 {
				return c
			}

			return cmp.Compare(a.Idea.Title, b.Idea.Title)
		})
	}

	return out, nil
}
