package rulepack

import (
	"errors"

	"github.com/dmitrymomot/fieldcheck/pkg/callbacks"
)

// Rule names.
const (
	RuleUUID     = "uuid"
	RuleAlpha    = "alpha"
	RuleAlphaNum = "alpha_num"
	RuleNumeric  = "numeric"
	RuleURL      = "url"
	RuleIn       = "in"
	RuleNotIn    = "not_in"
	RuleRegex    = "regex"
	RuleBetween  = "between"
	RuleSize     = "size"
)

// ErrNilRegistry is returned by Register when no registry is given.
var ErrNilRegistry = errors.New("rulepack: nil registry")

func validators() map[string]callbacks.Validator {
	return map[string]callbacks.Validator{
		RuleUUID:     callbacks.ValidatorFunc(UUID),
		RuleAlpha:    callbacks.ValidatorFunc(Alpha),
		RuleAlphaNum: callbacks.ValidatorFunc(AlphaNum),
		RuleNumeric:  callbacks.ValidatorFunc(Numeric),
		RuleURL:      callbacks.ValidatorFunc(URL),
		RuleIn:       callbacks.ValidatorFunc(In),
		RuleNotIn:    callbacks.ValidatorFunc(NotIn),
		RuleRegex:    RegexRule{},
		RuleBetween:  callbacks.ValidatorFunc(Between),
		RuleSize:     callbacks.ValidatorFunc(Size),
	}
}

// Register installs every rule of the pack into reg, replacing rules with the
// same name.
func Register(reg *callbacks.Registry) error {
	if reg == nil {
		return ErrNilRegistry
	}
	for name, fn := range validators() {
		if err := reg.Register(name, fn); err != nil {
			return err
		}
	}
	return nil
}

// Templates returns the default message templates for the pack's rules.
func Templates() map[string]string {
	return map[string]string{
		RuleUUID:     "{field} must be a valid UUID",
		RuleAlpha:    "{field} must contain only letters",
		RuleAlphaNum: "{field} must contain only letters and numbers",
		RuleNumeric:  "{field} must be numeric",
		RuleURL:      "{field} must be a valid URL",
		RuleIn:       "{field} must be one of the allowed values",
		RuleNotIn:    "{field} contains a forbidden value",
		RuleRegex:    "{field} format is invalid",
		RuleBetween:  "{field} must be between $0 and $1",
		RuleSize:     "{field} must have size $0",
	}
}
