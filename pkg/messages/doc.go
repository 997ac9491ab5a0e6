// Package messages stores and renders validation error message templates.
//
// A template is a plain string with two kinds of placeholders:
//
//   - {field} is replaced with the field name.
//   - $N is replaced with the N-th (0-based) rule parameter.
//
// For example "{field} should be greater than or equal to $0" rendered for
// field "age" with params [18] gives "age should be greater than or equal to 18".
// A $N without a matching parameter is left in the output unchanged.
//
// # Resolution
//
// Store keeps two layers. The global layer maps rule names to templates and
// starts from DefaultTemplates. The per-field layer (FieldMessages) maps a
// field and a rule to a custom template and wins over the global one for that
// exact pair. When neither layer has a template, Render reports false and the
// caller produces no message.
//
// # Sources
//
// Global templates can be extended from external sources:
//
//	src, err := messages.NewFileSource("messages.yaml")
//	if err != nil {
//	    return err
//	}
//	templates, err := messages.LoadAll(ctx, src)
//	if err != nil {
//	    return err
//	}
//	store := messages.NewStore(templates)
//
// Files hold a flat mapping of rule name to template and may be YAML (.yaml,
// .yml) or JSON (.json). MapSource serves templates from memory, and any type
// with a matching Load method (such as the redis template hash in pkg/redis)
// can be used as a Source.
package messages
