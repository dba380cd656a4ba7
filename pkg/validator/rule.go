package validator

import (
	"strconv"
	"strings"
)

// ParsedRule is a rule descriptor split into its parts.
//
// For "range:1:3" the name is "range", the params are ["1", "3"] and the
// registry key is "range:$1:$2". Every descriptor with the same name and
// number of params resolves to the same key.
type ParsedRule struct {
	Name   string
	Params []string
	Key    string
}

// Arity returns the number of params.
func (r ParsedRule) Arity() int {
	return len(r.Params)
}

// Param returns the i-th param (0-based) and whether it exists.
func (r ParsedRule) Param(i int) (string, bool) {
	if i < 0 || i >= len(r.Params) {
		return "", false
	}
	return r.Params[i], true
}

// ParseRule splits a descriptor on ':'. It never fails: any string,
// including the empty one, is a syntactically valid descriptor.
func ParseRule(descriptor string) ParsedRule {
	parts := strings.Split(descriptor, ":")
	params := parts[1:]
	if len(params) == 0 {
		params = nil
	}
	return ParsedRule{
		Name:   parts[0],
		Params: params,
		Key:    RuleKey(parts[0], len(params)),
	}
}

// RuleKey builds the registry key for a rule name taking arity params.
//
//	RuleKey("required", 0) // "required"
//	RuleKey("range", 2)    // "range:$1:$2"
func RuleKey(name string, arity int) string {
	if arity <= 0 {
		return name
	}

	var b strings.Builder
	b.WriteString(name)
	for i := 1; i <= arity; i++ {
		b.WriteString(":$")
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}
