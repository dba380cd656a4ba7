// Package ruleval is a declarative object-validation toolkit.
//
// A rule set maps field names to ordered lists of rule descriptors such as
// "required", "email" or "range:1:3". Validating an object (a
// map[string]any) checks every field against its rules and yields a pass/fail
// result with a human-readable message per failed rule.
//
// The module is organised as a set of packages under pkg/:
//
//   - validator: the rule engine, built-in rules and rule registries
//   - messages:  loading message templates from JSON/YAML catalogs
//   - config:    typed configuration from environment variables and .env files
//   - logger:    slog logger factory and attribute helpers
//
// Basic usage:
//
//	v := validator.New()
//	res, err := v.Validate(validator.RuleSet{
//		validator.Field("name", "required"),
//		validator.Field("phone", "required", "numeric"),
//	}, map[string]any{"name": "Sendy", "phone": "hi there123"})
//	if err != nil {
//		// unknown rule or missing message: a programming error
//	}
//	fmt.Println(res.Success, res.Messages.List)
//	// false [Phone must be numeric]
package ruleval
