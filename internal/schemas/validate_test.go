package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AnalysisResult_Valid(t *testing.T) {
	doc := []byte(`{
		"strengths": [{"name": "문제해결", "score": 85, "description": "근거"}],
		"interests": [{"field": "개발", "evidence": ["근거1"]}],
		"problemSolvingStyle": "체계적",
		"actionPlans": [{"id": "plan-1", "title": "t", "completed": false}],
		"relationGraph": {"nodes": [], "links": []}
	}`)

	assert.NoError(t, Validate(AnalysisResult, doc))
}

func TestValidate_AnalysisResult_MissingFieldsAllowed(t *testing.T) {
	// Every field is optional; defaults are substituted during assembly.
	assert.NoError(t, Validate(AnalysisResult, []byte(`{}`)))
}

func TestValidate_AnalysisResult_WrongType(t *testing.T) {
	doc := []byte(`{"strengths": "not-an-array"}`)

	err := Validate(AnalysisResult, doc)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.NotEmpty(t, ve.Errors)
	assert.Equal(t, "strengths", ve.Errors[0].Field)
}

func TestValidate_Checklist(t *testing.T) {
	valid := []byte(`[{"id": "c1", "text": "항목", "completed": false}]`)
	assert.NoError(t, Validate(Checklist, valid))

	invalid := []byte(`[{"id": 1}]`)
	assert.Error(t, Validate(Checklist, invalid))
}

func TestValidate_Suggestions(t *testing.T) {
	assert.NoError(t, Validate(Suggestions, []byte(`["제목1", "제목2"]`)))
	assert.Error(t, Validate(Suggestions, []byte(`[1, 2]`)))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nope", []byte(`{}`))
	assert.Error(t, err)
}
