// Package types defines the domain model shared by the prompt builder,
// the analysis pipeline, the state store, and the HTTP layer.
package types

// Status represents the user's current situation during onboarding.
type Status string

// Status values match the fixed enumeration offered by the onboarding flow.
const (
	StatusStudent    Status = "학생"
	StatusJobSeeker  Status = "취업준비생"
	StatusEmployee   Status = "직장인"
	StatusFreelancer Status = "프리랜서"
	StatusFounder    Status = "창업가"
	StatusOther      Status = "기타"
)

// AllStatuses lists every valid Status value.
func AllStatuses() []Status {
	return []Status{
		StatusStudent,
		StatusJobSeeker,
		StatusEmployee,
		StatusFreelancer,
		StatusFounder,
		StatusOther,
	}
}

// Valid reports whether s is one of the fixed Status values.
func (s Status) Valid() bool {
	for _, v := range AllStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// UserProfile is the onboarding profile. It is created once and only ever
// replaced wholesale, never partially updated.
type UserProfile struct {
	Name      string   `json:"name" validate:"required"`
	BirthYear int      `json:"birthYear"`
	Status    Status   `json:"status" validate:"required"`
	Major     string   `json:"major"`
	Keywords  []string `json:"keywords"`
}
