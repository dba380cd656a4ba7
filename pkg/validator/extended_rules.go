package validator

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// RegisterExtended adds the optional rules to v:
//
//	min:$1        at least n characters
//	max:$1        at most n characters
//	range:$1:$2   numeric value within [a, b]
//	same:$1       equal to another field of the object
//	url           absolute URL with scheme and host
//	uuid          canonical UUID string
//	alpha         ASCII letters only
//	alphanumeric  ASCII letters and digits only
//
// A param that does not parse makes the rule fail.
func RegisterExtended(v *Validator) {
	v.AddRule(RuleKey("min", 1), func(value any, rule ParsedRule, _ string, _ map[string]any) bool {
		n, err := strconv.Atoi(rule.Params[0])
		return err == nil && utf8.RuneCountInString(stringify(value)) >= n
	})
	v.AddRule(RuleKey("max", 1), func(value any, rule ParsedRule, _ string, _ map[string]any) bool {
		n, err := strconv.Atoi(rule.Params[0])
		return err == nil && utf8.RuneCountInString(stringify(value)) <= n
	})
	v.AddRule(RuleKey("range", 2), func(value any, rule ParsedRule, _ string, _ map[string]any) bool {
		lo, err1 := strconv.ParseFloat(rule.Params[0], 64)
		hi, err2 := strconv.ParseFloat(rule.Params[1], 64)
		n, err3 := strconv.ParseFloat(strings.TrimSpace(stringify(value)), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return false
		}
		return n >= lo && n <= hi
	})
	v.AddRule(RuleKey("same", 1), func(value any, rule ParsedRule, _ string, obj map[string]any) bool {
		return stringify(value) == stringify(obj[rule.Params[0]])
	})
	v.AddRule("url", func(value any, _ ParsedRule, _ string, _ map[string]any) bool {
		return isURL(stringify(value))
	})
	v.AddRule("uuid", func(value any, _ ParsedRule, _ string, _ map[string]any) bool {
		return isUUID(stringify(value))
	})
	v.AddRule("alpha", func(value any, _ ParsedRule, _ string, _ map[string]any) bool {
		return alphaRegex.MatchString(stringify(value))
	})
	v.AddRule("alphanumeric", func(value any, _ ParsedRule, _ string, _ map[string]any) bool {
		return alphanumericRegex.MatchString(stringify(value))
	})

	v.SetMessages(map[string]string{
		"min:$1":       "%{propertyName} must be at least %{ruleParams.0} characters",
		"max:$1":       "%{propertyName} must be at most %{ruleParams.0} characters",
		"range:$1:$2":  "%{propertyName} must be between %{ruleParams.0} and %{ruleParams.1}",
		"url":          "%{propertyName} must be a valid URL",
		"uuid":         "%{propertyName} must be a valid UUID",
		"alpha":        "%{propertyName} may only contain letters",
		"alphanumeric": "%{propertyName} may only contain letters and numbers",
	})
	v.SetMessageFunc("same:$1", func(ctx MessageContext) string {
		if len(ctx.RuleParams) == 0 {
			return fmt.Sprintf("%s must match the other field", ctx.PropertyName)
		}
		return fmt.Sprintf("%s must match %s", ctx.PropertyName, StartCase(ctx.RuleParams[0]))
	})
}

func isURL(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func isUUID(value string) bool {
	// uuid.Parse also accepts urn and braced forms; only the canonical one passes here.
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
