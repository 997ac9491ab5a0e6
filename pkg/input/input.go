// Package input turns common Go request and data shapes into the flat
// map[string]any that a validation session reads.
package input

import (
	"errors"
	"mime"
	"net/http"
	"net/url"
	"reflect"

	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"
)

// DefaultMaxMemory is the memory limit used when parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// FromValues converts url.Values into an input map. A key with a single
// value maps to that string, a key with several values maps to []string.
// Keys without values are left out.
func FromValues(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
			continue
		case 1:
			out[key] = vals[0]
		default:
			out[key] = append([]string(nil), vals...)
		}
	}
	return out
}

// FromRequest collects query, form and chi route parameters of r into one
// input map. Route parameters win over query and form values with the same
// name; form body values are merged with the query the way r.Form does.
func FromRequest(r *http.Request) (map[string]any, error) {
	if err := parseForm(r); err != nil {
		return nil, errors.Join(ErrFailedToParseForm, err)
	}

	out := FromValues(r.Form)

	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key == "" || i >= len(rctx.URLParams.Values) {
				continue
			}
			out[key] = rctx.URLParams.Values[i]
		}
	}
	return out, nil
}

func parseForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(DefaultMaxMemory)
	}
	return r.ParseForm()
}

// FromStruct converts a struct (or pointer to struct) into an input map using
// mapstructure. Keys come from `mapstructure` tags, falling back to field names.
// A nil pointer yields an empty map.
func FromStruct(v any) (map[string]any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return map[string]any{}, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, ErrInvalidTarget
	}

	out := make(map[string]any)
	if err := mapstructure.Decode(rv.Interface(), &out); err != nil {
		return nil, errors.Join(ErrFailedToDecode, err)
	}
	return out, nil
}
