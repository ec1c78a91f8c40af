package domain

// InvestmentLevel buckets the starting capital a business idea needs.
type InvestmentLevel string

const (
	InvestmentLow    InvestmentLevel = "low"
	InvestmentMedium InvestmentLevel = "medium"
	InvestmentHigh   InvestmentLevel = "high"
)

// BusinessIdea is a hand-authored small business suggestion.
type BusinessIdea struct {
	ID          string          `json:"id"                    yaml:"id"`
	Title       string          `json:"title"                 yaml:"title"`
	Category    string          `json:"category"              yaml:"category"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Investment  InvestmentLevel `json:"investment"            yaml:"investment"`
	// MinInvestment is the indicative starting capital in the dataset currency.
	MinInvestment int      `json:"min_investment"      yaml:"min_investment"`
	Interests     []string `json:"interests,omitempty" yaml:"interests,omitempty"`
	Skills        []string `json:"skills,omitempty"    yaml:"skills,omitempty"`
}

// IdeaMatch is a business idea scored against user interests. Score is zero
// when no interests were supplied.
type IdeaMatch struct {
	Idea             BusinessIdea
	Score            int
	MatchedInterests []string
}
