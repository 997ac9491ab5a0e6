package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldcheck/pkg/callbacks"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/messages"
	"github.com/dmitrymomot/fieldcheck/pkg/redis"
	"github.com/dmitrymomot/fieldcheck/pkg/rulepack"
	"github.com/dmitrymomot/fieldcheck/pkg/schema"
	"github.com/dmitrymomot/fieldcheck/pkg/validation"
)

type validateOptions struct {
	schema   string
	input    string
	messages string
	output   string
	extended bool
}

func newValidateCmd(a *app) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a JSON document against a schema",
		Long: `Validate reads a JSON object from --input (stdin by default), applies the
rules of --schema and prints the error messages. It exits with 1 when the
document is invalid and 2 on usage or read errors.

Message templates are merged in this order, later wins: built-in templates,
the rule pack templates (--extended), redis (FIELDCHECK_REDIS_URL),
FIELDCHECK_MESSAGES_FILE, --messages.`,
		Example: `  fieldcheck validate --schema signup.yaml --input signup.json
  cat signup.json | fieldcheck validate -s signup.yaml --extended -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.validate(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.schema, "schema", "s", "", "rule schema file (YAML or JSON)")
	f.StringVarP(&opts.input, "input", "i", "-", "JSON document to validate, - reads stdin")
	f.StringVarP(&opts.messages, "messages", "m", "", "message templates file (YAML or JSON)")
	f.StringVarP(&opts.output, "output", "o", "text", "output format: text or json")
	f.BoolVar(&opts.extended, "extended", false, "enable the extra rules (uuid, alpha, in, regex, between, ...)")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

func (a *app) validate(ctx context.Context, opts *validateOptions) error {
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("%w: %q", ErrUnknownOutput, opts.output)
	}

	s, err := schema.Load(ctx, opts.schema)
	if err != nil {
		return err
	}
	data, err := a.readInput(opts.input)
	if err != nil {
		return err
	}
	templates, err := a.loadTemplates(ctx, opts.messages)
	if err != nil {
		return err
	}

	reg := callbacks.Default().Clone()
	var overrides []map[string]string
	if opts.extended {
		if err := rulepack.Register(reg); err != nil {
			return err
		}
		overrides = append(overrides, rulepack.Templates())
	}
	overrides = append(overrides, templates)

	v := s.Apply(validation.New(data,
		validation.WithRegistry(reg),
		validation.WithMessageStore(messages.NewStore(overrides...)),
		validation.WithLogger(a.log),
		validation.WithContext(ctx),
	))
	valid := v.IsValid()

	a.log.DebugContext(ctx, "validation finished",
		logger.Path(opts.schema),
		slog.Bool("valid", valid),
		logger.Messages(v.Errors()),
	)

	if err := a.report(opts.output, valid, v.Errors()); err != nil {
		return err
	}
	if !valid {
		return ErrInvalidDocument
	}
	return nil
}

func (a *app) readInput(path string) (map[string]any, error) {
	r := a.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadInput, err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Join(ErrFailedToDecodeJSON, err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}

// loadTemplates merges message templates from redis, the configured messages
// file and the --messages file, in that order.
func (a *app) loadTemplates(ctx context.Context, messagesFile string) (map[string]string, error) {
	var sources []messages.Source

	if a.cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, a.cfg.Redis)
		if err != nil {
			return nil, err
		}
		defer client.Close()

		a.log.DebugContext(ctx, "reading templates from redis", slog.String("key", a.cfg.Redis.TemplatesKey))
		sources = append(sources, redis.NewTemplates(client, a.cfg.Redis.TemplatesKey))
	}

	for _, path := range []string{a.cfg.MessagesFile, messagesFile} {
		if path == "" {
			continue
		}
		src, err := messages.NewFileSource(path)
		if err != nil {
			return nil, err
		}
		a.log.DebugContext(ctx, "reading templates from file", logger.Path(path))
		sources = append(sources, src)
	}

	return messages.LoadAll(ctx, sources...)
}

type report struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func (a *app) report(format string, valid bool, errs []string) error {
	if errs == nil {
		errs = []string{}
	}

	if format == "json" {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report{Valid: valid, Errors: errs})
	}

	if valid {
		_, err := fmt.Fprintln(a.stdout, "valid")
		return err
	}
	for _, msg := range errs {
		if _, err := fmt.Fprintln(a.stdout, msg); err != nil {
			return err
		}
	}
	return nil
}
