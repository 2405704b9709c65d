package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"local format", "09171234567", true},
		{"local format with dashes", "0917-123-4567", true},
		{"international format", "+639171234567", true},
		{"international without plus", "639171234567", true},
		{"too short", "0917123456", false},
		{"too long", "091712345678", false},
		{"landline", "0281234567", false},
		{"letters", "0917abc4567", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhoneNumber(tt.phone))
		})
	}
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-02-29")
	assert.True(t, ok, "leap day should parse")

	_, ok = IsValidDate("2023-02-29")
	assert.False(t, ok, "Feb 29 on a non-leap year should not parse")

	_, ok = IsValidDate("15-01-2024")
	assert.False(t, ok)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("hr@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "password", Message: "is required"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "is required", m["email"])
	assert.Contains(t, errs.Error(), "email: is required")
}
