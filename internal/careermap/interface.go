package careermap

import (
	"context"

	"careerguide/pkg/domain"
)

// IdeaFilter narrows BusinessIdeas. Zero fields match everything.
type IdeaFilter struct {
	Category string
	// MaxInvestment keeps ideas whose level is at or below it.
	MaxInvestment domain.InvestmentLevel
	// Interests, when set, drops ideas sharing none of them and orders the rest
	// by overlap.
	Interests []string
}

// Guide answers questions about the loaded career dataset. Every method
// returns serrors.ErrUnavailable while no dataset is loaded.
//
//go:generate mockgen -package mockcareermap -source=interface.go -destination=mock/mockcareermap.go *
type Guide interface {
	Stages(ctx context.Context) ([]domain.Stage, error)
	Goals(ctx context.Context) ([]domain.Goal, error)
	Interests(ctx context.Context) ([]domain.InterestCategory, error)
	Careers(ctx context.Context, stream string) ([]domain.Career, error)
	Career(ctx context.Context, id string) (*domain.Career, error)
	Idea(ctx context.Context, id string) (*domain.BusinessIdea, error)
	BusinessIdeas(ctx context.Context, filter IdeaFilter) ([]domain.IdeaMatch, error)
	GeneratePath(ctx context.Context, stage domain.StageID, goal domain.GoalID) (*domain.CareerPath, error)
	PathToCareer(ctx context.Context, stage domain.StageID, careerID string) (*domain.CareerPath, error)
	FindCareersByInterests(ctx context.Context, interests []string, limit int) ([]domain.CareerMatch, error)
}
