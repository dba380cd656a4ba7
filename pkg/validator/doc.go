// Package validator checks map-shaped objects against declarative rule lists
// and renders human-readable messages for every failure.
//
// Rules are written as descriptor strings. A descriptor is a rule name
// optionally followed by ':'-separated params: "required", "email",
// "range:1:3". Each descriptor resolves to a registry key that keeps the name
// and replaces every param with its position, so "range:1:3" and "range:0:9"
// both use the predicate and message registered under "range:$1:$2".
//
// # Usage
//
//	v := validator.New()
//
//	res, err := v.Validate(validator.RuleSet{
//	    validator.Field("name", "required"),
//	    validator.Field("officeEmail", "email"),
//	    validator.Field("phone", "required", "numeric"),
//	}, map[string]any{
//	    "name":        "Sendy",
//	    "officeEmail": "invalid email",
//	    "phone":       "hi there123",
//	})
//	if err != nil {
//	    // a rule or message is not registered: fix the rule set
//	}
//	if !res.Success {
//	    res.Messages.Fields["officeEmail"]["email"] // "Office Email must be a valid email"
//	    res.Messages.List                          // every message in evaluation order
//	}
//
// # Extending
//
// AddRule and SetMessage register or replace entries. Parameterised rules are
// registered under their derived key:
//
//	v.AddRule("divisible:$1", func(value any, rule validator.ParsedRule, field string, obj map[string]any) bool {
//	    n, _ := strconv.Atoi(fmt.Sprint(value))
//	    d, err := strconv.Atoi(rule.Params[0])
//	    return err == nil && d != 0 && n%d == 0
//	})
//	v.SetMessage("divisible:$1", "%{propertyName} must be divisible by %{ruleParams.0}")
//
// Message templates only substitute the placeholders listed on Template;
// SetMessageFunc takes a Go function for anything more involved.
//
// # Errors
//
// A failed rule is data: it is reported in the Result and Validate returns a
// nil error. Validate only returns an error, a *ConfigError wrapping
// ErrUnknownRule or ErrMissingMessage, when the rule set references a key
// that is not registered. Result.Err converts failures into ValidationErrors
// for code that wants to return them as an error.
//
// # Concurrency
//
// Validate never writes to the registries. Registry access is guarded by a
// mutex, so registering rules while other goroutines validate is safe, but
// the usual pattern is to configure a Validator once at startup.
//
// The package-level functions use a shared default instance; New creates
// isolated ones.
package validator
