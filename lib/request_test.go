package lib

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"omitempty,gte=13"`
}

func TestExtractAndValidateBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/signup", strings.NewReader(
		`{"name": "Ayesha", "email": "ayesha@example.com", "age": 16}`,
	))

	body, err := ExtractAndValidateBody[signupRequest](r)
	require.NoError(t, err)
	assert.Equal(t, "Ayesha", body.Name)
	assert.Equal(t, "ayesha@example.com", body.Email)
	assert.Equal(t, 16, body.Age)
}

func TestExtractAndValidateBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/signup", strings.NewReader(
		`{"name": "Ayesha", "email": "ayesha@example.com", "role": "admin"}`,
	))

	_, err := ExtractAndValidateBody[signupRequest](r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")
}

func TestExtractAndValidateBodyRejectsMalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/signup", strings.NewReader(`{"name":`))

	_, err := ExtractAndValidateBody[signupRequest](r)
	assert.Error(t, err)
}

func TestExtractAndValidateBodyValidation(t *testing.T) {
	r := httptest.NewRequest("POST", "/signup", strings.NewReader(
		`{"name": "A", "email": "not-an-email", "age": 9}`,
	))

	_, err := ExtractAndValidateBody[signupRequest](r)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	fields := ve.FieldMap()
	assert.Equal(t, []string{"must be at least 2"}, fields["name"])
	assert.Equal(t, []string{"must be a valid email address"}, fields["email"])
	assert.Equal(t, []string{"must be greater than or equal to 13"}, fields["age"])
}

func TestValidationErrorFieldMapGroupsMessages(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "email", Message: "is required"},
		{Field: "email", Message: "must be a valid email address"},
		{Field: "name", Message: "is required"},
	}}

	fields := ve.FieldMap()
	assert.Len(t, fields, 2)
	assert.Equal(t, []string{"is required", "must be a valid email address"}, fields["email"])
}
