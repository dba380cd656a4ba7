package validator

import (
	"regexp"
	"strconv"
	"strings"
)

// MessageContext is the data available to a rule message.
type MessageContext struct {
	PropertyName string
	RuleName     string
	RuleParams   []string
	Value        any
}

// MessageFunc renders the message for a failed rule.
type MessageFunc func(MessageContext) string

// placeholderRegex matches named placeholders in the form %{name}.
var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Template returns a MessageFunc substituting these placeholders:
//
//	%{propertyName}   prettified field name, e.g. "Office Email"
//	%{ruleName}       rule key, e.g. "range:$1:$2"
//	%{ruleParams}     params joined with ",", e.g. "1,3"
//	%{ruleParams.N}   single param, 0-based
//	%{value}          the offending value, empty for nil
//
// Anything else, including out-of-range params, is left untouched.
// No expressions are evaluated.
func Template(tmpl string) MessageFunc {
	return func(ctx MessageContext) string {
		return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
			name := match[2 : len(match)-1]
			switch name {
			case "propertyName":
				return ctx.PropertyName
			case "ruleName":
				return ctx.RuleName
			case "ruleParams":
				return strings.Join(ctx.RuleParams, ",")
			case "value":
				return stringify(ctx.Value)
			}

			if idx, ok := strings.CutPrefix(name, "ruleParams."); ok {
				i, err := strconv.Atoi(idx)
				if err == nil && i >= 0 && i < len(ctx.RuleParams) {
					return ctx.RuleParams[i]
				}
			}
			return match
		})
	}
}

// message is a registry entry. custom marks entries set through SetMessageFunc,
// which have no template.
type message struct {
	tmpl   string
	render MessageFunc
	custom bool
}
