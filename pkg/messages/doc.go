// Package messages loads rule message templates from JSON or YAML files.
//
// A catalog is a flat mapping from rule key to template, using the same keys
// as the validator registries:
//
//	required: "%{propertyName} can't be blank"
//	"range:$1:$2": "%{propertyName} must be from %{ruleParams.0} to %{ruleParams.1}"
//
// Catalogs come from a Source: MapSource (in memory), FileSource (one file
// on disk), FSSource (every supported file in a directory of an fs.FS, e.g.
// an embed.FS) and NewDirectorySource (the same over a directory on disk).
// Load merges several sources, later ones winning:
//
//	catalog, err := messages.Load(ctx,
//	    messages.NewFSSource(defaults, "messages"),
//	    messages.NewFileSource(messages.NewYAMLParser(), "/etc/app/messages.yaml"),
//	)
//	if err != nil {
//	    return err
//	}
//	v := validator.New(validator.WithMessages(catalog))
//
// Errors are package sentinels joined with their cause, so errors.Is works on
// both, e.g. ErrFailedToParseFile and ErrFailedToParseYAML.
package messages
