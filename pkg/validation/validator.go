package validation

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/fieldcheck/pkg/callbacks"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/messages"
	"github.com/dmitrymomot/fieldcheck/pkg/rules"
)

// Validator is a single validation session: one input, its rule
// declarations, stop directives and the accumulated error messages.
// It is not safe for concurrent use.
type Validator struct {
	input      map[string]any
	rules      *ruleSet
	stopRules  map[string][]string
	stopFields []string
	registry   *callbacks.Registry
	messages   *messages.Store
	overrides  []map[string]string
	errors     []string
	logger     *slog.Logger
	ctx        context.Context
}

// New creates a validation session for input. Unless WithRegistry is given,
// the session works on a snapshot of callbacks.Default taken here. A store
// given through WithMessageStore is copied, so the session never writes to it.
func New(input map[string]any, opts ...Option) *Validator {
	v := &Validator{
		input:     input,
		rules:     newRuleSet(),
		stopRules: make(map[string][]string),
		logger:    logger.Discard(),
		ctx:       context.Background(),
	}

	for _, opt := range opts {
		opt(v)
	}

	if v.registry == nil {
		v.registry = callbacks.Default().Clone()
	}
	if v.messages == nil {
		v.messages = messages.NewStore()
	} else {
		v.messages = v.messages.Clone()
	}
	for _, o := range v.overrides {
		v.messages.Extend(o)
	}
	return v
}

// RegisterCallback adds or replaces a rule validator for this session only.
// Use callbacks.Register to register a rule for every future session.
func (v *Validator) RegisterCallback(name string, fn callbacks.ValidatorFunc) error {
	return v.registry.Register(name, fn)
}

// Registry returns the registry the session resolves rules from.
func (v *Validator) Registry() *callbacks.Registry {
	return v.registry
}

// Fields returns the declared fields in declaration order.
func (v *Validator) Fields() []string {
	return slices.Clone(v.rules.order)
}

// Spec returns the rules declared for field in declaration order.
func (v *Validator) Spec(field string) rules.Spec {
	return v.rules.spec(field)
}

// Errors returns a copy of the error messages collected so far.
func (v *Validator) Errors() []string {
	return slices.Clone(v.errors)
}

// Err returns nil when no error has been collected, otherwise an *Error
// holding the messages.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}
	return &Error{Messages: v.Errors()}
}

// ruleSet keeps per-field rules in first-declaration order.
type ruleSet struct {
	order  []string
	fields map[string]*fieldRules
}

type fieldRules struct {
	order  []string
	byName map[string]rules.Rule
}

func newRuleSet() *ruleSet {
	return &ruleSet{fields: make(map[string]*fieldRules)}
}

// add merges spec into field. A rule declared again keeps its position and
// takes the new params.
func (rs *ruleSet) add(field string, spec rules.Spec) {
	if len(spec) == 0 {
		return
	}

	fr, ok := rs.fields[field]
	if !ok {
		fr = &fieldRules{byName: make(map[string]rules.Rule)}
		rs.fields[field] = fr
		rs.order = append(rs.order, field)
	}

	for _, r := range spec {
		if _, exists := fr.byName[r.Name]; !exists {
			fr.order = append(fr.order, r.Name)
		}
		fr.byName[r.Name] = r
	}
}

func (rs *ruleSet) spec(field string) rules.Spec {
	fr, ok := rs.fields[field]
	if !ok {
		return nil
	}
	spec := make(rules.Spec, 0, len(fr.order))
	for _, name := range fr.order {
		spec = append(spec, fr.byName[name])
	}
	return spec
}
