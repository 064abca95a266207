package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"user@example.com",
		"first.last@sub.example.co.in",
		"user+tag@example.com",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNumeric("9876543210"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("98765abc"))
	assert.False(t, IsNumeric("98 76"))
	assert.False(t, IsNumeric("-12"))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	got, ok := IsValidDate("2025-03-01")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got)

	_, ok = IsValidDate("01-03-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	t.Parallel()

	statuses := []string{"active", "inactive", "suspended"}
	assert.True(t, IsInSlice("active", statuses))
	assert.False(t, IsInSlice("retired", statuses))
	assert.False(t, IsInSlice("active", nil))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "emp_code", Message: "is required"},
		{Field: "mobile_no", Message: "must be numeric"},
	}

	assert.Equal(t, "emp_code: is required; mobile_no: must be numeric", errs.Error())
	assert.Equal(t, map[string]string{
		"emp_code":  "is required",
		"mobile_no": "must be numeric",
	}, errs.ToMap())
}
