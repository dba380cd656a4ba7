package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ruleval/pkg/validator"
)

func TestStartCase(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"officeEmail":    "Office Email",
		"name":           "Name",
		"first_name":     "First Name",
		"first-name":     "First Name",
		"XMLHttpRequest": "XML Http Request",
		"userID":         "User ID",
		"address2":       "Address 2",
		"__phone__":      "Phone",
		"already Spaced": "Already Spaced",
		"":               "",
		"---":            "",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, validator.StartCase(in))
		})
	}
}
