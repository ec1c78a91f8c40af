package careermap

import (
	"context"
	"slices"

	"careerguide/pkg/catalog"
	"careerguide/pkg/domain"
	"careerguide/pkg/serrors"
)

// WalkRules follows the rule table from start toward goal. At each stage the
// first rule whose from_stage and goal match is taken. The walk stops when no
// rule matches or when a step leads into a stage that was already visited; in
// the latter case that step is kept and CycleDetected is set.
func WalkRules(snap *catalog.Snapshot, start domain.StageID, goal domain.GoalID) domain.CareerPath {
	path := domain.CareerPath{Start: start, Goal: goal, Final: start}
	visited := map[domain.StageID]struct{}{start: {}}

	current := start
	for {
		idx := slices.IndexFunc(snap.Dataset.Rules, func(r domain.Rule) bool {
			return r.FromStage == current && r.Goal == goal
		})
		if idx < 0 {
			break
		}
		rule := snap.Dataset.Rules[idx]

		path.Steps = append(path.Steps, domain.PathStep{
			Order:     len(path.Steps) + 1,
			From:      current,
			FromLabel: snap.StageLabel(current),
			To:        rule.NextStage,
			ToLabel:   snap.StageLabel(rule.NextStage),
			Action:    rule.Action,
			Duration:  rule.Duration,
			Exams:     slices.Clone(rule.Exams),
		})

		current = rule.NextStage
		path.Final = current
		if _, seen := visited[current]; seen {
			path.CycleDetected = true

			break
		}
		visited[current] = struct{}{}
	}

	return path
}

func (g *guide) GeneratePath(ctx context.Context, stage domain.StageID, goal domain.GoalID) (*domain.CareerPath, error) {
	ctx, done := g.observe(ctx, "generate_path")

	path, err := g.generatePath(ctx, stage, goal)
	done(err)

	return path, err
}

func (g *guide) generatePath(ctx context.Context, stage domain.StageID, goal domain.GoalID) (*domain.CareerPath, error) {
	stage = domain.StageID(catalog.NormalizeID(string(stage)))
	goal = domain.GoalID(catalog.NormalizeID(string(goal)))
	if stage == "" || goal == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "stage and goal are required")
	}

	snap, err := g.snapshot()
	if err != nil {
		return nil, err
	}

	if len(snap.Dataset.Stages) > 0 {
		if _, ok := snap.Stage(stage); !ok {
			return nil, serrors.With(serrors.ErrNotFound, "unknown stage %q", stage)
		}
	}
	if len(snap.Dataset.Goals) > 0 {
		if _, ok := snap.Goal(goal); !ok {
			return nil, serrors.With(serrors.ErrNotFound, "unknown goal %q", goal)
		}
	}

	key := g.cacheKey(snap, "path", string(stage), string(goal))
	var cached domain.CareerPath
	if g.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	path := WalkRules(snap, stage, goal)
	if len(path.Steps) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, "rule not found from stage %q toward goal %q", stage, goal)
	}

	g.cacheSet(ctx, key, path)

	return &path, nil
}

func (g *guide) PathToCareer(ctx context.Context, stage domain.StageID, careerID string) (*domain.CareerPath, error) {
	ctx, done := g.observe(ctx, "path_to_career")

	path, err := g.pathToCareer(ctx, stage, careerID)
	done(err)

	return path, err
}

func (g *guide) pathToCareer(ctx context.Context, stage domain.StageID, careerID string) (*domain.CareerPath, error) {
	snap, err := g.snapshot()
	if err != nil {
		return nil, err
	}

	career, ok := snap.Career(catalog.NormalizeID(careerID))
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "career %q not found", careerID)
	}
	if career.Goal == "" {
		return nil, serrors.With(serrors.ErrNotFound, "career %q has no path", career.ID)
	}

	return g.generatePath(ctx, stage, career.Goal)
}
