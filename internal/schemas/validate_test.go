package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestValidateResumeData_ValidPayload(t *testing.T) {
	data := payload(t, `{
		"personal": {"name": "Ada"},
		"summary": "Engineer.",
		"experience": [{"title": "Dev"}],
		"skills": ["Go"]
	}`)
	assert.NoError(t, ValidateResumeData(data))
}

func TestValidateResumeData_EmptyObject(t *testing.T) {
	assert.NoError(t, ValidateResumeData(map[string]any{}))
}

func TestValidateResumeData_LooseItemShapesAccepted(t *testing.T) {
	// value shapes are normalization's problem, not the boundary's
	data := payload(t, `{
		"skills": [{"name": "Go", "level": 5}, "SQL", 3],
		"experience": ["a bare string entry"]
	}`)
	assert.NoError(t, ValidateResumeData(data))
}

func TestValidateResumeData_WrongContainerTypes(t *testing.T) {
	data := payload(t, `{
		"personal": "not an object",
		"skills": "not an array"
	}`)
	err := ValidateResumeData(data)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 2)

	fields := []string{verr.Errors[0].Field, verr.Errors[1].Field}
	assert.Contains(t, fields, "personal")
	assert.Contains(t, fields, "skills")
}

func TestValidateResumeData_SummaryMustBeString(t *testing.T) {
	data := payload(t, `{"summary": ["line1", "line2"]}`)
	err := ValidateResumeData(data)
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "personal", Message: "Invalid type"},
		{Field: "skills", Message: "Invalid type"},
	}}
	msg := err.Error()
	assert.Contains(t, msg, "1. personal")
	assert.Contains(t, msg, "2. skills")
}
