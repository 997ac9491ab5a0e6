package validation

import (
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/fieldcheck/pkg/messages"
	"github.com/dmitrymomot/fieldcheck/pkg/rules"
)

// FieldRule pairs a field with its rule string, e.g. {"age", "required|min:18"}.
type FieldRule struct {
	Field string
	Rules string
}

// SetRule declares rules for field. Rules merge into any earlier declaration
// for the same field; a rule declared again keeps its position and takes the
// new parameters. A non-empty per-field message table replaces the current one.
func (v *Validator) SetRule(field, ruleString string, fieldMessages ...messages.FieldMessages) *Validator {
	for _, m := range fieldMessages {
		v.SetMessages(m)
	}

	field = strings.TrimSpace(field)
	if field == "" {
		return v
	}
	v.rules.add(field, rules.Parse(ruleString))
	return v
}

// SetRules declares rules for several fields. Map keys are visited in sorted
// order; use SetRulesOrdered to control field order.
func (v *Validator) SetRules(fieldRules map[string]string, fieldMessages ...messages.FieldMessages) *Validator {
	for _, m := range fieldMessages {
		v.SetMessages(m)
	}
	for _, field := range slices.Sorted(maps.Keys(fieldRules)) {
		v.SetRule(field, fieldRules[field])
	}
	return v
}

// SetRulesOrdered declares rules for several fields in the given order.
func (v *Validator) SetRulesOrdered(fieldRules []FieldRule, fieldMessages ...messages.FieldMessages) *Validator {
	for _, m := range fieldMessages {
		v.SetMessages(m)
	}
	for _, fr := range fieldRules {
		v.SetRule(fr.Field, fr.Rules)
	}
	return v
}

// SetMessages replaces the per-field message table. Empty tables are ignored.
func (v *Validator) SetMessages(fieldMessages messages.FieldMessages) *Validator {
	v.messages.SetFieldMessages(fieldMessages)
	return v
}

// StopRule marks rules of field as stop rules: once one of them has run and
// any error has been collected, evaluation of the field's remaining rules ends.
// ruleString uses the rule grammar; parameters are ignored.
func (v *Validator) StopRule(field, ruleString string) *Validator {
	field = strings.TrimSpace(field)
	names := rules.Names(ruleString)
	if field == "" || len(names) == 0 {
		return v
	}
	v.stopRules[field] = append(v.stopRules[field], names...)
	return v
}

// StopRules marks stop rules for several fields, visiting keys in sorted order.
func (v *Validator) StopRules(fieldRules map[string]string) *Validator {
	for _, field := range slices.Sorted(maps.Keys(fieldRules)) {
		v.StopRule(field, fieldRules[field])
	}
	return v
}

// StopField ends the whole session after field has been evaluated, if any
// error has been collected by then.
func (v *Validator) StopField(field string) *Validator {
	field = strings.TrimSpace(field)
	if field != "" && !slices.Contains(v.stopFields, field) {
		v.stopFields = append(v.stopFields, field)
	}
	return v
}

// StopFields marks several stop fields.
func (v *Validator) StopFields(fields ...string) *Validator {
	for _, f := range fields {
		v.StopField(f)
	}
	return v
}

func (v *Validator) isStopRule(field, rule string) bool {
	return slices.Contains(v.stopRules[field], rule)
}

func (v *Validator) isStopField(field string) bool {
	return slices.Contains(v.stopFields, field)
}
