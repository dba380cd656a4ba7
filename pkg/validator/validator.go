package validator

import (
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/ruleval/pkg/logger"
)

// Predicate reports whether value satisfies rule. The whole object is passed
// along so rules can compare fields with each other.
type Predicate func(value any, rule ParsedRule, field string, obj map[string]any) bool

// Validator owns a predicate registry and a message registry, both keyed by
// rule key (see RuleKey). The zero value is not usable; call New.
type Validator struct {
	mu         sync.RWMutex
	predicates map[string]Predicate
	messages   map[string]message
	logger     *slog.Logger

	imageExts []string
	extended  bool
	overrides map[string]string
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithImageExtensions replaces the extension list used by the image rule.
// Extensions are matched case-insensitively, with or without a leading dot.
func WithImageExtensions(exts ...string) Option {
	return func(v *Validator) {
		if len(exts) > 0 {
			v.imageExts = exts
		}
	}
}

// WithExtendedRules registers the extended rule set next to the built-ins.
func WithExtendedRules() Option {
	return func(v *Validator) {
		v.extended = true
	}
}

// WithMessages overrides message templates after the built-ins are registered.
func WithMessages(templates map[string]string) Option {
	return func(v *Validator) {
		if v.overrides == nil {
			v.overrides = make(map[string]string, len(templates))
		}
		maps.Copy(v.overrides, templates)
	}
}

// New returns a Validator with the required, numeric, email and image rules
// registered. Instances do not share state.
func New(opts ...Option) *Validator {
	v := &Validator{
		predicates: make(map[string]Predicate),
		messages:   make(map[string]message),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		imageExts:  DefaultImageExtensions,
	}

	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With(logger.Component("validator"))

	registerBuiltin(v)
	if v.extended {
		RegisterExtended(v)
	}
	for key, tmpl := range v.overrides {
		v.messages[key] = message{tmpl: tmpl, render: Template(tmpl)}
	}
	v.overrides = nil

	v.logger.Debug("validator initialized", logger.Count(len(v.predicates)))
	return v
}

// AddRule registers or replaces the predicate stored under key. Parameterised
// rules must be registered under their derived key, e.g. "range:$1:$2".
func (v *Validator) AddRule(key string, p Predicate) {
	v.mu.Lock()
	v.predicates[key] = p
	v.mu.Unlock()

	v.logger.Debug("rule registered", logger.RuleKey(key))
}

// SetMessage registers or replaces the message template stored under key.
// See Template for the placeholder syntax.
func (v *Validator) SetMessage(key, tmpl string) {
	v.mu.Lock()
	v.messages[key] = message{tmpl: tmpl, render: Template(tmpl)}
	v.mu.Unlock()

	v.logger.Debug("message registered", logger.RuleKey(key))
}

// SetMessageFunc registers a renderer function instead of a template.
func (v *Validator) SetMessageFunc(key string, fn MessageFunc) {
	v.mu.Lock()
	v.messages[key] = message{render: fn, custom: true}
	v.mu.Unlock()

	v.logger.Debug("message registered", logger.RuleKey(key))
}

// SetMessages calls SetMessage for every entry.
func (v *Validator) SetMessages(templates map[string]string) {
	for key, tmpl := range templates {
		v.SetMessage(key, tmpl)
	}
}

func (v *Validator) HasRule(key string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.predicates[key]
	return ok
}

func (v *Validator) HasMessage(key string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.messages[key]
	return ok
}

// Rules returns the registered rule keys, sorted.
func (v *Validator) Rules() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Sorted(maps.Keys(v.predicates))
}

// Messages returns a copy of the template registry. Entries registered with
// SetMessageFunc have no template and are left out.
func (v *Validator) Messages() map[string]string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make(map[string]string, len(v.messages))
	for key, m := range v.messages {
		if !m.custom {
			out[key] = m.tmpl
		}
	}
	return out
}

// Render renders the message registered under key.
func (v *Validator) Render(key string, ctx MessageContext) (string, bool) {
	v.mu.RLock()
	m, ok := v.messages[key]
	v.mu.RUnlock()
	if !ok {
		return "", false
	}
	return m.render(ctx), true
}

// Clone returns an independent Validator with the same registries and logger.
func (v *Validator) Clone() *Validator {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return &Validator{
		predicates: maps.Clone(v.predicates),
		messages:   maps.Clone(v.messages),
		logger:     v.logger,
		imageExts:  slices.Clone(v.imageExts),
		extended:   v.extended,
	}
}

func (v *Validator) lookup(key string) (Predicate, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	p, ok := v.predicates[key]
	return p, ok
}

func (v *Validator) lookupMessage(key string) (message, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	m, ok := v.messages[key]
	return m, ok
}
