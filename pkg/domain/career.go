package domain

// StageID identifies an education or career milestone, e.g. "class_10_below".
type StageID string

// GoalID identifies what a user is aiming for, e.g. "engineering".
type GoalID string

// Stage is a milestone a user can be at or move through.
type Stage struct {
	ID          StageID `json:"id"                    yaml:"id"`
	Label       string  `json:"label"                 yaml:"label"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// Goal is a target the rule table can plan toward.
type Goal struct {
	ID          GoalID `json:"id"                    yaml:"id"`
	Label       string `json:"label"                 yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Rule maps a (FromStage, Goal) pair to the recommended NextStage.
type Rule struct {
	FromStage StageID `json:"from_stage"         yaml:"from_stage"`
	Goal      GoalID  `json:"goal"               yaml:"goal"`
	NextStage StageID `json:"next_stage"         yaml:"next_stage"`
	// Action describes what to do to move on, e.g. "Take PCM in class 11".
	Action   string   `json:"action,omitempty"   yaml:"action,omitempty"`
	Duration string   `json:"duration,omitempty" yaml:"duration,omitempty"`
	Exams    []string `json:"exams,omitempty"    yaml:"exams,omitempty"`
}

// Career is a destination users can browse and match against.
type Career struct {
	ID          string   `json:"id"                     yaml:"id"`
	Name        string   `json:"name"                   yaml:"name"`
	Stream      string   `json:"stream"                 yaml:"stream"`
	Description string   `json:"description,omitempty"  yaml:"description,omitempty"`
	Goal        GoalID   `json:"goal,omitempty"         yaml:"goal,omitempty"`
	Interests   []string `json:"interests,omitempty"    yaml:"interests,omitempty"`
	Skills      []string `json:"skills,omitempty"       yaml:"skills,omitempty"`
	SalaryRange string   `json:"salary_range,omitempty" yaml:"salary_range,omitempty"`
}

// PathStep is one hop of a generated career path.
type PathStep struct {
	// Order is 1-based.
	Order     int
	From      StageID
	FromLabel string
	To        StageID
	ToLabel   string
	Action    string
	Duration  string
	Exams     []string
}

// CareerPath is the result of walking the rule table from Start toward Goal.
type CareerPath struct {
	Start StageID
	Goal  GoalID
	Steps []PathStep
	// Final is the stage the walk stopped at.
	Final StageID
	// CycleDetected reports that the last step led back into a stage that had
	// already been visited.
	CycleDetected bool
}

// CareerMatch is a career scored against a set of user interests.
type CareerMatch struct {
	Career           Career
	Score            int
	MatchedInterests []string
}

// Interest is a single selectable interest.
type Interest struct {
	ID    string `json:"id"    yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// InterestCategory groups interests for display.
type InterestCategory struct {
	ID        string     `json:"id"        yaml:"id"`
	Label     string     `json:"label"     yaml:"label"`
	Interests []Interest `json:"interests" yaml:"interests"`
}
