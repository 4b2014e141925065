package types

import (
	"fmt"
	"time"
)

// ExperienceCategory classifies an experience on the timeline.
type ExperienceCategory string

// ExperienceCategory values match the fixed enumeration used by the timeline UI.
const (
	CategoryAcademic  ExperienceCategory = "학업/연구"
	CategoryWork      ExperienceCategory = "인턴/직장"
	CategoryStartup   ExperienceCategory = "창업/프로젝트"
	CategoryVolunteer ExperienceCategory = "봉사/활동"
	CategoryAbroad    ExperienceCategory = "해외경험"
	CategoryHobby     ExperienceCategory = "취미/자기계발"
	CategoryEtc       ExperienceCategory = "기타"
)

// AllCategories lists every valid ExperienceCategory value.
func AllCategories() []ExperienceCategory {
	return []ExperienceCategory{
		CategoryAcademic,
		CategoryWork,
		CategoryStartup,
		CategoryVolunteer,
		CategoryAbroad,
		CategoryHobby,
		CategoryEtc,
	}
}

// Valid reports whether c is one of the fixed category values.
func (c ExperienceCategory) Valid() bool {
	for _, v := range AllCategories() {
		if c == v {
			return true
		}
	}
	return false
}

// Experience is a single user-recorded life or career event with a time span,
// category and reflective metadata. IDs are caller-generated and unique.
//
// Invariant: when IsOngoing is true the end fields are nil. When it is false
// both end fields should be set; rendering falls back to the start date when
// they are missing.
type Experience struct {
	ID           string             `json:"id" validate:"required"`
	Title        string             `json:"title" validate:"required"`
	StartYear    int                `json:"startYear" validate:"required"`
	StartMonth   int                `json:"startMonth" validate:"min=1,max=12"`
	EndYear      *int               `json:"endYear"`
	EndMonth     *int               `json:"endMonth"`
	IsOngoing    bool               `json:"isOngoing"`
	Description  string             `json:"description"`
	Category     ExperienceCategory `json:"category" validate:"required"`
	Satisfaction int                `json:"satisfaction" validate:"min=1,max=5"`
	Emotions     []string           `json:"emotions"`
	Skills       []string           `json:"skills"`
	Achievement  string             `json:"achievement,omitempty"`
}

// Period renders the experience span as "YYYY.MM ~ 현재" for ongoing
// experiences, "YYYY.MM ~ YYYY.MM" when both end fields are present, and the
// bare start date otherwise.
func (e Experience) Period() string {
	start := fmt.Sprintf("%d.%02d", e.StartYear, e.StartMonth)
	if e.IsOngoing {
		return start + " ~ 현재"
	}
	if e.EndYear != nil && e.EndMonth != nil {
		return fmt.Sprintf("%s ~ %d.%02d", start, *e.EndYear, *e.EndMonth)
	}
	return start
}

// Duration renders the length of the experience in Korean, computed against
// now for ongoing experiences and falling back to the start date when end
// fields are absent.
func (e Experience) Duration(now time.Time) string {
	endYear, endMonth := e.StartYear, e.StartMonth
	if e.IsOngoing {
		endYear, endMonth = now.Year(), int(now.Month())
	} else {
		if e.EndYear != nil {
			endYear = *e.EndYear
		}
		if e.EndMonth != nil {
			endMonth = *e.EndMonth
		}
	}

	totalMonths := (endYear-e.StartYear)*12 + (endMonth - e.StartMonth)
	switch {
	case totalMonths < 1:
		return "1개월 미만"
	case totalMonths < 12:
		return fmt.Sprintf("%d개월", totalMonths)
	}

	years := totalMonths / 12
	months := totalMonths % 12
	if months > 0 {
		return fmt.Sprintf("%d년 %d개월", years, months)
	}
	return fmt.Sprintf("%d년", years)
}
