package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/openclo/openclo/internal/prompts"
	"github.com/openclo/openclo/internal/types"
)

const (
	// MaxExperiences bounds how many experiences one analysis may cover.
	MaxExperiences = 50
	// maxDescriptionRunes bounds each experience description in the prompt.
	maxDescriptionRunes = 500
	// maxAchievementRunes bounds each achievement text in the prompt.
	maxAchievementRunes = 200
	// nonePlaceholder renders missing optional fields so the model always
	// sees a consistent shape.
	nonePlaceholder = "없음"
)

// BuildAnalysisPrompt renders the analysis instruction for a profile and its
// experiences, embedding a literal example of the expected output schema.
func BuildAnalysisPrompt(profile types.UserProfile, experiences []types.Experience) (string, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return "", &ValidationError{Field: "profile.name", Message: "이름이 필요합니다"}
	}
	if profile.Status == "" {
		return "", &ValidationError{Field: "profile.status", Message: "현재 상태가 필요합니다"}
	}
	if len(experiences) == 0 {
		return "", &ValidationError{Field: "experiences", Message: "경험이 최소 1개 이상 필요합니다"}
	}
	if len(experiences) > MaxExperiences {
		return "", &ValidationError{Field: "experiences", Message: fmt.Sprintf("경험은 최대 %d개까지 분석 가능합니다", MaxExperiences)}
	}

	blocks := make([]string, 0, len(experiences))
	for i, exp := range experiences {
		blocks = append(blocks, renderExperience(i+1, exp))
	}

	template := prompts.MustGet("analyze.txt")
	return prompts.Format(template, map[string]string{
		"Name":        profile.Name,
		"BirthYear":   strconv.Itoa(profile.BirthYear),
		"Status":      string(profile.Status),
		"Major":       orPlaceholder(profile.Major, "미입력"),
		"Keywords":    joinOrPlaceholder(profile.Keywords),
		"Count":       strconv.Itoa(len(experiences)),
		"Experiences": strings.Join(blocks, "\n\n"),
	}), nil
}

// BuildChecklistPrompt renders the instruction requesting 5-7 checklist
// items for an action plan.
func BuildChecklistPrompt(title, description string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", &ValidationError{Field: "actionPlanTitle", Message: "액션 플랜 제목이 필요합니다"}
	}

	template := prompts.MustGet("checklist.txt")
	return prompts.Format(template, map[string]string{
		"Title":       title,
		"Description": orPlaceholder(description, nonePlaceholder),
	}), nil
}

// BuildSuggestionPrompt renders the instruction requesting exactly 5
// experience titles for a category, excluding conceptual duplicates of the
// titles already supplied.
func BuildSuggestionPrompt(profile types.UserProfile, category types.ExperienceCategory, existingTitles []string) (string, error) {
	if category == "" {
		return "", &ValidationError{Field: "category", Message: "카테고리가 필요합니다"}
	}

	template := prompts.MustGet("suggest.txt")
	return prompts.Format(template, map[string]string{
		"Category":       string(category),
		"Status":         string(profile.Status),
		"Major":          profile.Major,
		"Keywords":       joinOrPlaceholder(profile.Keywords),
		"ExistingTitles": joinOrPlaceholder(existingTitles),
	}), nil
}

// renderExperience renders one numbered experience block. Optional fields
// render as an explicit placeholder rather than being omitted.
func renderExperience(n int, exp types.Experience) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[경험 %d] %s (%s)\n", n, exp.Title, exp.Category)
	fmt.Fprintf(&sb, "기간: %s\n", exp.Period())
	fmt.Fprintf(&sb, "설명: %s\n", orPlaceholder(truncateRunes(exp.Description, maxDescriptionRunes), nonePlaceholder))
	fmt.Fprintf(&sb, "만족도: %d/5\n", exp.Satisfaction)
	fmt.Fprintf(&sb, "감정: %s\n", joinOrPlaceholder(exp.Emotions))
	fmt.Fprintf(&sb, "역량: %s\n", joinOrPlaceholder(exp.Skills))
	fmt.Fprintf(&sb, "성취: %s", orPlaceholder(truncateRunes(exp.Achievement, maxAchievementRunes), nonePlaceholder))
	return sb.String()
}

// truncateRunes bounds s to max runes. Truncation is rune-safe so Korean
// text is never split mid-character.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func joinOrPlaceholder(items []string) string {
	if len(items) == 0 {
		return nonePlaceholder
	}
	return strings.Join(items, ", ")
}
