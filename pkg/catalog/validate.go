package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"careerguide/pkg/domain"
)

// Problem is a referential inconsistency found in a dataset.
type Problem struct {
	// Path locates the offending record, e.g. "rules[3].next_stage".
	Path    string
	Message string
}

func (p Problem) Error() string { return p.Path + ": " + p.Message }

// Validate checks the string-ID references between dataset records. An empty
// stage or goal list means the dataset does not enumerate them and references
// to them are not checked. Likewise interest references are only checked when
// a taxonomy is present.
func Validate(ds *Dataset) []Problem {
	var problems []Problem
	add := func(path, msgFmt string, args ...any) {
		problems = append(problems, Problem{Path: path, Message: fmt.Sprintf(msgFmt, args...)})
	}

	stages := make(map[domain.StageID]bool, len(ds.Stages))
	for i, st := range ds.Stages {
		if st.ID == "" {
			add(fmt.Sprintf("stages[%d].id", i), "empty id")
		}
		if stages[st.ID] {
			add(fmt.Sprintf("stages[%d].id", i), "duplicate stage %q", st.ID)
		}
		stages[st.ID] = true
	}

	goals := make(map[domain.GoalID]bool, len(ds.Goals))
	for i, g := range ds.Goals {
		if g.ID == "" {
			add(fmt.Sprintf("goals[%d].id", i), "empty id")
		}
		if goals[g.ID] {
			add(fmt.Sprintf("goals[%d].id", i), "duplicate goal %q", g.ID)
		}
		goals[g.ID] = true
	}

	interests := map[string]bool{}
	for ci, cat := range ds.Interests {
		for ii, in := range cat.Interests {
			if interests[in.ID] {
				add(fmt.Sprintf("interests[%d].interests[%d].id", ci, ii), "duplicate interest %q", in.ID)
			}
			interests[in.ID] = true
		}
	}

	type ruleKey struct {
		from domain.StageID
		goal domain.GoalID
	}
	seenRules := make(map[ruleKey]int, len(ds.Rules))
	for i, r := range ds.Rules {
		path := fmt.Sprintf("rules[%d]", i)
		if r.FromStage == "" || r.Goal == "" || r.NextStage == "" {
			add(path, "from_stage, goal and next_stage are required")

			continue
		}
		if len(stages) > 0 && !stages[r.FromStage] {
			add(path+".from_stage", "unknown stage %q", r.FromStage)
		}
		if len(stages) > 0 && !stages[r.NextStage] {
			add(path+".next_stage", "unknown stage %q", r.NextStage)
		}
		if len(goals) > 0 && !goals[r.Goal] {
			add(path+".goal", "unknown goal %q", r.Goal)
		}
		if r.FromStage == r.NextStage {
			add(path, "rule loops on stage %q", r.FromStage)
		}
		k := ruleKey{r.FromStage, r.Goal}
		if first, dup := seenRules[k]; dup {
			add(path, "shadowed by rules[%d] for (%s, %s)", first, r.FromStage, r.Goal)
		} else {
			seenRules[k] = i
		}
	}

	careers := make(map[string]bool, len(ds.Careers))
	for i, c := range ds.Careers {
		path := fmt.Sprintf("careers[%d]", i)
		if c.ID == "" {
			add(path+".id", "empty id")
		}
		if careers[c.ID] {
			add(path+".id", "duplicate career %q", c.ID)
		}
		careers[c.ID] = true
		if c.Stream == "" {
			add(path+".stream", "empty stream")
		}
		if c.Goal != "" && len(goals) > 0 && !goals[c.Goal] {
			add(path+".goal", "unknown goal %q", c.Goal)
		}
		for j, in := range c.Interests {
			if len(interests) > 0 && !interests[in] {
				add(fmt.Sprintf("%s.interests[%d]", path, j), "unknown interest %q", in)
			}
		}
	}

	for _, in := range slices.Sorted(maps.Keys(ds.InterestStreams)) {
		if len(interests) > 0 && !interests[in] {
			add("interest_to_stream."+in, "unknown interest %q", in)
		}
	}

	ideas := make(map[string]bool, len(ds.BusinessIdeas))
	for i, idea := range ds.BusinessIdeas {
		path := fmt.Sprintf("business_ideas[%d]", i)
		if idea.ID == "" {
			add(path+".id", "empty id")
		}
		if ideas[idea.ID] {
			add(path+".id", "duplicate idea %q", idea.ID)
		}
		ideas[idea.ID] = true
		switch idea.Investment {
		case domain.InvestmentLow, domain.InvestmentMedium, domain.InvestmentHigh:
		default:
			add(path+".investment", "unknown investment level %q", idea.Investment)
		}
		for j, in := range idea.Interests {
			if len(interests) > 0 && !interests[in] {
				add(fmt.Sprintf("%s.interests[%d]", path, j), "unknown interest %q", in)
			}
		}
	}

	return problems
}

// Err joins problems into a single error, or returns nil.
func Err(problems []Problem) error {
	errs := make([]error, len(problems))
	for i := range problems {
		errs[i] = problems[i]
	}

	return errors.Join(errs...)
}
