package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclo/openclo/internal/llm"
	"github.com/openclo/openclo/internal/types"
)

// fakeClient returns a canned response and records the last prompt.
type fakeClient struct {
	response   string
	err        error
	lastPrompt string
	lastTier   llm.ModelTier
	calls      int
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastTier = tier
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

const analysisResponse = `분석 결과입니다:
{
  "strengths": [{"name": "문제해결력", "score": 88, "description": "해커톤 경험"}],
  "interests": [{"field": "웹 개발", "evidence": ["해커톤 참가"]}],
  "problemSolvingStyle": "체계적으로 접근한다",
  "energyDirection": "협업에서 에너지를 얻는다",
  "actionPlans": [{"id": "plan-1", "title": "사이드 프로젝트", "description": "실전 경험", "duration": "4주", "difficulty": "보통", "category": "역량개발", "resources": ["GitHub"], "completed": true}],
  "summary": "성장 가능성이 높다",
  "careerSuggestions": ["백엔드 개발자"],
  "relationGraph": {
    "nodes": [{"id": "n1", "label": "해커톤", "type": "experience"}],
    "links": [{"source": "n1", "target": "n1", "strength": 0.9}]
  },
  "analysisDate": "1999-01-01T00:00:00Z"
}`

func TestAnalyzer_Analyze(t *testing.T) {
	client := &fakeClient{response: analysisResponse}
	analyzer := NewAnalyzer(client, nil, nil)

	before := time.Now()
	result, err := analyzer.Analyze(context.Background(), validProfile(), []types.Experience{validExperience("e1")})
	require.NoError(t, err)

	assert.Equal(t, llm.TierStandard, client.lastTier)
	assert.Contains(t, client.lastPrompt, "교내 해커톤 참가")

	require.Len(t, result.Strengths, 1)
	assert.Equal(t, "문제해결력", result.Strengths[0].Name)
	assert.False(t, result.ActionPlans[0].Completed)

	// The forged analysisDate must be replaced with a fresh local stamp
	stamped, err := time.Parse(time.RFC3339, result.AnalysisDate)
	require.NoError(t, err)
	assert.False(t, stamped.Before(before.Truncate(time.Second)))
	assert.WithinDuration(t, time.Now(), stamped, 5*time.Second)
}

func TestAnalyzer_Analyze_ValidationFailsBeforeGatewayCall(t *testing.T) {
	client := &fakeClient{response: analysisResponse}
	analyzer := NewAnalyzer(client, nil, nil)

	_, err := analyzer.Analyze(context.Background(), validProfile(), nil)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, client.calls, "gateway must not be called on invalid input")
}

func TestAnalyzer_Analyze_NoClientConfigured(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil, nil)

	_, err := analyzer.Analyze(context.Background(), validProfile(), []types.Experience{validExperience("e1")})

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
}

func TestAnalyzer_Analyze_QuotaClassified(t *testing.T) {
	client := &fakeClient{err: errors.New("googleapi: Error 429: quota exceeded")}
	analyzer := NewAnalyzer(client, nil, nil)

	_, err := analyzer.Analyze(context.Background(), validProfile(), []types.Experience{validExperience("e1")})

	var qerr *QuotaExceededError
	require.ErrorAs(t, err, &qerr)
}

func TestAnalyzer_Analyze_NoJSON(t *testing.T) {
	client := &fakeClient{response: "죄송합니다, 분석할 수 없습니다."}
	analyzer := NewAnalyzer(client, nil, nil)

	_, err := analyzer.Analyze(context.Background(), validProfile(), []types.Experience{validExperience("e1")})

	var eerr *ExtractionError
	require.ErrorAs(t, err, &eerr)
}

func TestAnalyzer_Analyze_SchemaViolation(t *testing.T) {
	client := &fakeClient{response: `{"strengths": "not-an-array"}`}
	analyzer := NewAnalyzer(client, nil, nil)

	_, err := analyzer.Analyze(context.Background(), validProfile(), []types.Experience{validExperience("e1")})

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestAnalyzer_Checklist(t *testing.T) {
	client := &fakeClient{response: "```json\n[{\"id\": \"c1\", \"text\": \"자료 조사\", \"completed\": true}, {\"text\": \"초안 작성\"}]\n```"}
	analyzer := NewAnalyzer(client, nil, nil)

	items, err := analyzer.Checklist(context.Background(), "포트폴리오 만들기", "정리")
	require.NoError(t, err)

	assert.Equal(t, llm.TierLite, client.lastTier)
	require.Len(t, items, 2)
	assert.Equal(t, "c1", items[0].ID)
	assert.False(t, items[0].Completed)
	assert.Equal(t, "c-2", items[1].ID)
}

func TestAnalyzer_Suggest(t *testing.T) {
	client := &fakeClient{response: `["동아리 활동", "공모전", "스터디", "인턴", "봉사"]`}
	analyzer := NewAnalyzer(client, nil, nil)

	suggestions, err := analyzer.Suggest(context.Background(), validProfile(), types.CategoryVolunteer, []string{"기존 경험"})
	require.NoError(t, err)

	assert.Len(t, suggestions, 5)
	assert.Contains(t, client.lastPrompt, "기존 경험")
}

func TestAnalyzer_Suggest_ParseFailure(t *testing.T) {
	client := &fakeClient{response: `[1, 2, 3]`}
	analyzer := NewAnalyzer(client, nil, nil)

	_, err := analyzer.Suggest(context.Background(), validProfile(), types.CategoryVolunteer, nil)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestClassifyGatewayError(t *testing.T) {
	assert.Nil(t, ClassifyGatewayError(nil))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, ClassifyGatewayError(plain))

	var qerr *QuotaExceededError
	assert.ErrorAs(t, ClassifyGatewayError(errors.New("Quota exceeded for model")), &qerr)
	assert.ErrorAs(t, ClassifyGatewayError(errors.New("status 429")), &qerr)
}
