package validator

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/ruleval/pkg/logger"
)

// FieldRules is the ordered list of rule descriptors for one field.
type FieldRules struct {
	Field string
	Rules []string
}

// Field builds a FieldRules value.
func Field(name string, rules ...string) FieldRules {
	return FieldRules{Field: name, Rules: rules}
}

// RuleSet lists fields in evaluation order.
type RuleSet []FieldRules

// FromMap converts a map into a RuleSet. Go maps carry no insertion order, so
// fields are sorted by name to keep the result deterministic.
func FromMap(m map[string][]string) RuleSet {
	set := make(RuleSet, 0, len(m))
	for _, field := range slices.Sorted(maps.Keys(m)) {
		set = append(set, FieldRules{Field: field, Rules: m[field]})
	}
	return set
}

// Messages holds rendered failure messages. Fields maps field name to rule key
// to message; List keeps every message in evaluation order.
type Messages struct {
	Fields map[string]map[string]string `json:"fields"`
	List   []string                     `json:"messageArray"`
}

// Has reports whether field failed at least one rule.
func (m Messages) Has(field string) bool {
	return len(m.Fields[field]) > 0
}

// Get returns the messages of field keyed by rule key.
func (m Messages) Get(field string) map[string]string {
	return m.Fields[field]
}

// Len returns the number of failed (field, rule) pairs.
func (m Messages) Len() int {
	return len(m.List)
}

// Result is the outcome of Validate.
type Result struct {
	Success  bool     `json:"success"`
	Messages Messages `json:"messages"`

	errs ValidationErrors
}

// Err returns the failures as ValidationErrors, or nil on success.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return r.errs
}

// Errors returns the failures in evaluation order.
func (r Result) Errors() ValidationErrors {
	return r.errs
}

// First returns the first message recorded for field, in evaluation order.
func (r Result) First(field string) string {
	for _, e := range r.errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Validate applies rules to obj. A field missing from obj is validated as nil.
//
// Failing rules are reported in the Result. The returned error is only set
// for configuration mistakes: a descriptor whose key has no predicate, or a
// failing rule whose key has no message. Those abort validation and are
// reported as *ConfigError.
func (v *Validator) Validate(rules RuleSet, obj map[string]any) (Result, error) {
	res := Result{
		Success: true,
		Messages: Messages{
			Fields: make(map[string]map[string]string),
			List:   []string{},
		},
	}

	for _, fr := range rules {
		value := obj[fr.Field]

		for _, descriptor := range fr.Rules {
			rule := ParseRule(descriptor)

			predicate, ok := v.lookup(rule.Key)
			if !ok {
				return Result{}, v.configError(fr.Field, rule.Key, ErrUnknownRule)
			}
			if predicate(value, rule, fr.Field, obj) {
				continue
			}

			m, ok := v.lookupMessage(rule.Key)
			if !ok {
				return Result{}, v.configError(fr.Field, rule.Key, ErrMissingMessage)
			}

			msg := m.render(MessageContext{
				PropertyName: StartCase(fr.Field),
				RuleName:     rule.Key,
				RuleParams:   rule.Params,
				Value:        value,
			})

			res.Success = false
			if res.Messages.Fields[fr.Field] == nil {
				res.Messages.Fields[fr.Field] = make(map[string]string)
			}
			res.Messages.Fields[fr.Field][rule.Key] = msg
			res.Messages.List = append(res.Messages.List, msg)
			res.errs = append(res.errs, ValidationError{
				Field:   fr.Field,
				Rule:    rule.Key,
				Message: msg,
				Params:  rule.Params,
				Value:   value,
			})

			v.logger.Debug("rule failed", logger.Field(fr.Field), logger.Rule(descriptor))
		}
	}

	return res, nil
}

// ValidateMap is Validate with rules given as a map; see FromMap for ordering.
func (v *Validator) ValidateMap(rules map[string][]string, obj map[string]any) (Result, error) {
	return v.Validate(FromMap(rules), obj)
}

func (v *Validator) configError(field, key string, err error) error {
	cfgErr := &ConfigError{Field: field, Key: key, Err: err}
	v.logger.Error("validator misconfigured",
		logger.Field(field),
		logger.RuleKey(key),
		logger.Error(err),
	)
	return cfgErr
}
