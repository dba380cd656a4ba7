package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ruleval/pkg/validator"
)

func TestParseRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		descriptor string
		want       validator.ParsedRule
	}{
		{"required", validator.ParsedRule{Name: "required", Key: "required"}},
		{"range:1:3", validator.ParsedRule{Name: "range", Params: []string{"1", "3"}, Key: "range:$1:$2"}},
		{"range:0:9", validator.ParsedRule{Name: "range", Params: []string{"0", "9"}, Key: "range:$1:$2"}},
		{"min:8", validator.ParsedRule{Name: "min", Params: []string{"8"}, Key: "min:$1"}},
		{"", validator.ParsedRule{Name: "", Key: ""}},
		{"a::", validator.ParsedRule{Name: "a", Params: []string{"", ""}, Key: "a:$1:$2"}},
		{":x", validator.ParsedRule{Name: "", Params: []string{"x"}, Key: ":$1"}},
	}

	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			t.Parallel()
			got := validator.ParseRule(tt.descriptor)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want.Params), got.Arity())
		})
	}
}

func TestParseRule_Deterministic(t *testing.T) {
	t.Parallel()

	first := validator.ParseRule("between:1:10")
	for range 10 {
		assert.Equal(t, first, validator.ParseRule("between:1:10"))
	}
}

func TestParsedRule_Param(t *testing.T) {
	t.Parallel()

	r := validator.ParseRule("range:1:3")

	p, ok := r.Param(1)
	assert.True(t, ok)
	assert.Equal(t, "3", p)

	_, ok = r.Param(2)
	assert.False(t, ok)
	_, ok = r.Param(-1)
	assert.False(t, ok)
}

func TestRuleKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "required", validator.RuleKey("required", 0))
	assert.Equal(t, "min:$1", validator.RuleKey("min", 1))
	assert.Equal(t, "range:$1:$2", validator.RuleKey("range", 2))
	assert.Equal(t, "x", validator.RuleKey("x", -1))
	assert.Equal(t, validator.ParseRule("f:a:b:c").Key, validator.RuleKey("f", 3))
}
