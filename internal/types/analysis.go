package types

// Difficulty grades an action plan.
type Difficulty string

// Difficulty values match the fixed 3-value enumeration.
const (
	DifficultyEasy   Difficulty = "쉬움"
	DifficultyNormal Difficulty = "보통"
	DifficultyHard   Difficulty = "어려움"
)

// StrengthItem is a single detected strength with a 0-100 score.
type StrengthItem struct {
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// InterestItem is a detected interest field with supporting evidence drawn
// from the user's experiences.
type InterestItem struct {
	Field    string   `json:"field"`
	Evidence []string `json:"evidence"`
}

// ActionPlan is a suggested, user-trackable task derived from analysis.
// Completed is the only field mutated after creation; it is toggled locally
// and never re-sent to the model.
type ActionPlan struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category"`
	Resources   []string   `json:"resources"`
	Completed   bool       `json:"completed"`
}

// RelationNodeType classifies a node in the relation graph.
type RelationNodeType string

// Relation node types.
const (
	NodeExperience RelationNodeType = "experience"
	NodeSkill      RelationNodeType = "skill"
	NodeInterest   RelationNodeType = "interest"
	NodeStrength   RelationNodeType = "strength"
)

// RelationNode is a vertex of the relation graph.
type RelationNode struct {
	ID    string           `json:"id"`
	Label string           `json:"label"`
	Type  RelationNodeType `json:"type"`
}

// RelationLink connects two relation nodes with a 0-1 strength.
type RelationLink struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Strength float64 `json:"strength"`
}

// RelationGraph connects experiences, skills, interests and strengths for
// visualization.
type RelationGraph struct {
	Nodes []RelationNode `json:"nodes"`
	Links []RelationLink `json:"links"`
}

// AnalysisResult is the model-derived bundle produced from one analysis
// request. It is created and replaced wholesale, never partially merged.
// AnalysisDate is assigned locally and never trusted from the model.
type AnalysisResult struct {
	Strengths           []StrengthItem `json:"strengths"`
	Interests           []InterestItem `json:"interests"`
	ProblemSolvingStyle string         `json:"problemSolvingStyle"`
	EnergyDirection     string         `json:"energyDirection"`
	ActionPlans         []ActionPlan   `json:"actionPlans"`
	Summary             string         `json:"summary"`
	CareerSuggestions   []string       `json:"careerSuggestions"`
	RelationGraph       RelationGraph  `json:"relationGraph"`
	AnalysisDate        string         `json:"analysisDate"`
}

// ChecklistItem is a single generated checklist entry for an action plan.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
