package catalog

import (
	"strings"

	"careerguide/pkg/domain"
)

// NormalizeID lower-cases and trims id and turns runs of spaces, dashes and
// underscores into a single underscore, so "Data-Science " and "data science"
// both become "data_science".
func NormalizeID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))

	var b strings.Builder
	b.Grow(len(id))
	sep := false
	for _, r := range id {
		if r == ' ' || r == '-' || r == '_' || r == '\t' {
			sep = true

			continue
		}
		if sep && b.Len() > 0 {
			b.WriteByte('_')
		}
		sep = false
		b.WriteRune(r)
	}

	return b.String()
}

// NormalizeIDs normalizes ids, dropping empty and repeated entries while
// keeping the first-seen order.
func NormalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		n := NormalizeID(id)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}

// Normalize rewrites every record ID and ID reference in ds to its
// NormalizeID form, so lookups with normalized user input find them.
// Interest lists keep duplicates dropped; interest_to_stream keys that
// collide after normalization have their streams merged. Streams, labels and
// free text are left alone.
func (ds *Dataset) Normalize() {
	for i := range ds.Stages {
		ds.Stages[i].ID = domain.StageID(NormalizeID(string(ds.Stages[i].ID)))
	}
	for i := range ds.Goals {
		ds.Goals[i].ID = domain.GoalID(NormalizeID(string(ds.Goals[i].ID)))
	}
	for i := range ds.Rules {
		r := &ds.Rules[i]
		r.FromStage = domain.StageID(NormalizeID(string(r.FromStage)))
		r.Goal = domain.GoalID(NormalizeID(string(r.Goal)))
		r.NextStage = domain.StageID(NormalizeID(string(r.NextStage)))
	}
	for i := range ds.Careers {
		c := &ds.Careers[i]
		c.ID = NormalizeID(c.ID)
		c.Goal = domain.GoalID(NormalizeID(string(c.Goal)))
		c.Interests = NormalizeIDs(c.Interests)
	}
	for i := range ds.BusinessIdeas {
		idea := &ds.BusinessIdeas[i]
		idea.ID = NormalizeID(idea.ID)
		idea.Investment = domain.InvestmentLevel(NormalizeID(string(idea.Investment)))
		idea.Interests = NormalizeIDs(idea.Interests)
	}
	for ci := range ds.Interests {
		cat := &ds.Interests[ci]
		cat.ID = NormalizeID(cat.ID)
		for ii := range cat.Interests {
			cat.Interests[ii].ID = NormalizeID(cat.Interests[ii].ID)
		}
	}

	if len(ds.InterestStreams) > 0 {
		streams := make(map[string][]string, len(ds.InterestStreams))
		for k, v := range ds.InterestStreams {
			n := NormalizeID(k)
			streams[n] = append(streams[n], v...)
		}
		ds.InterestStreams = streams
	}
}
