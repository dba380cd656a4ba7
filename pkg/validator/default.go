package validator

import "sync"

var defaultValidator = sync.OnceValue(func() *Validator { return New() })

// Default returns the process-wide Validator used by the package-level
// functions. Prefer an explicit instance from New where isolation matters,
// e.g. in tests.
func Default() *Validator {
	return defaultValidator()
}

// Validate runs Default().Validate.
func Validate(rules RuleSet, obj map[string]any) (Result, error) {
	return Default().Validate(rules, obj)
}

// ValidateMap runs Default().ValidateMap.
func ValidateMap(rules map[string][]string, obj map[string]any) (Result, error) {
	return Default().ValidateMap(rules, obj)
}

// AddRule registers a predicate on the default Validator.
func AddRule(key string, p Predicate) {
	Default().AddRule(key, p)
}

// SetMessage registers a message template on the default Validator.
func SetMessage(key, tmpl string) {
	Default().SetMessage(key, tmpl)
}
