package validation

import (
	"github.com/dmitrymomot/fieldcheck/pkg/callbacks"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/rules"
)

// IsValid runs the declared rules over the input and reports whether no error
// has been collected. Fields are visited in declaration order and rules in
// declaration order within a field.
//
// A field missing from the input, or holding nil, is skipped entirely, so
// "required" only fails for values that are present but empty. Rules with no
// registered validator are skipped silently. Stop rules and stop fields look
// at the session's total error count, not just the current field.
//
// Errors accumulate: calling IsValid again re-runs the rules and appends.
func (v *Validator) IsValid() bool {
	for _, field := range v.rules.order {
		value, ok := v.input[field]
		if !ok || value == nil {
			v.logger.DebugContext(v.ctx, "field absent, skipped", logger.Field(field))
			continue
		}

		fr := v.rules.fields[field]
		for _, name := range fr.order {
			rule := fr.byName[name]

			if fn, found := v.registry.Lookup(name); found {
				if !check(fn, field, value, rule) {
					v.Record(field, name, rule.Params)
				}
			} else {
				v.logger.DebugContext(v.ctx, "no validator for rule, skipped",
					logger.Field(field),
					logger.Rule(name),
				)
			}

			if v.isStopRule(field, name) && len(v.errors) > 0 {
				v.logger.DebugContext(v.ctx, "stop rule reached",
					logger.Field(field),
					logger.Rule(name),
				)
				break
			}
		}

		if v.isStopField(field) && len(v.errors) > 0 {
			v.logger.DebugContext(v.ctx, "stop field reached", logger.Field(field))
			break
		}
	}

	return len(v.errors) == 0
}

func check(fn callbacks.Validator, field string, value any, rule rules.Rule) bool {
	if rv, ok := fn.(callbacks.RawValidator); ok {
		return rv.ValidateRaw(field, value, rule.Raw)
	}
	return fn.Validate(field, value, rule.Params...)
}

// Record renders the message for a failed rule and appends it to the session
// errors. When no template exists for the rule, nothing is recorded and ok is
// false.
func (v *Validator) Record(field, rule string, params []any) (string, bool) {
	msg, ok := v.messages.Render(field, rule, params)
	if !ok {
		v.logger.DebugContext(v.ctx, "no message template for rule",
			logger.Field(field),
			logger.Rule(rule),
		)
		return "", false
	}
	v.errors = append(v.errors, msg)
	return msg, true
}
