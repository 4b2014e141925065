package types

// EmotionOptions is the suggested emotion vocabulary shown when recording an
// experience. Free text is also allowed.
var EmotionOptions = []string{
	"도전적", "열정적", "성취감", "성장", "협력", "창의",
	"인내", "리더십", "자유", "탐구", "봉사", "책임감",
	"스트레스", "아쉬움", "배움",
}

// SkillSuggestions is the suggested skill vocabulary shown when recording an
// experience.
var SkillSuggestions = []string{
	"Python", "JavaScript", "TypeScript", "React", "Next.js", "Node.js",
	"SQL", "Excel", "Figma", "포토샵", "프레젠테이션", "글쓰기",
	"데이터 분석", "프로젝트 관리", "팀워크", "커뮤니케이션", "기획",
	"영어", "중국어", "일본어", "마케팅", "세일즈", "디자인",
}

// CategoryColors maps each experience category to its display color.
var CategoryColors = map[ExperienceCategory]string{
	CategoryAcademic:  "#6366f1",
	CategoryWork:      "#0ea5e9",
	CategoryStartup:   "#f59e0b",
	CategoryVolunteer: "#10b981",
	CategoryAbroad:    "#8b5cf6",
	CategoryHobby:     "#f43f5e",
	CategoryEtc:       "#6b7280",
}
