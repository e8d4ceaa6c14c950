// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

// DecodeFunc turns the raw bytes of a configuration file into a value.
// filename is used only for diagnostics.
type DecodeFunc func(data []byte, filename string) (any, error)

// Format describes how configuration files are named and decoded.
// Extensions carry the leading dot; the first one is the primary extension
// used in error messages.
type Format struct {
	Name       string
	Extensions []string
	Decode     DecodeFunc
}

var (
	// JSON reads *.json files. It is the default format.
	JSON = Format{Name: "json", Extensions: []string{".json"}, Decode: decodeJSON}

	// YAML reads *.yaml files and falls back to *.yml.
	YAML = Format{Name: "yaml", Extensions: []string{".yaml", ".yml"}, Decode: decodeYAML}

	// HCL reads *.hcl files made of top-level attributes. Nested values are
	// written as object and tuple expressions; blocks are rejected.
	HCL = Format{Name: "hcl", Extensions: []string{".hcl"}, Decode: decodeHCL}
)

// FormatByName returns one of the built-in formats.
func FormatByName(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "hcl":
		return HCL, nil
	}
	return Format{}, fmt.Errorf("unknown config format: %q", name)
}

// ext returns the primary extension.
func (f Format) ext() string {
	if len(f.Extensions) == 0 {
		return ""
	}
	return f.Extensions[0]
}

// trimExt returns filename without its extension when the extension belongs
// to the format.
func (f Format) trimExt(filename string) (string, bool) {
	for _, ext := range f.Extensions {
		if name, ok := strings.CutSuffix(filename, ext); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

func decodeJSON(data []byte, _ string) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty document")
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Empty YAML documents decode to nil. Mapping keys are converted to strings
// so that every decoded document has the same shape as decoded JSON.
func decodeYAML(data []byte, _ string) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return stringKeys(v), nil
}

// stringKeys rewrites map[interface{}]interface{} values, which yaml.v3
// produces for mappings with non-string keys such as `80: http`, into
// map[string]any.
func stringKeys(v any) any {
	switch v := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case map[string]any:
		for k, val := range v {
			v[k] = stringKeys(val)
		}
		return v
	case []any:
		for i, val := range v {
			v[i] = stringKeys(val)
		}
		return v
	}
	return v
}

// decodeHCL evaluates each top-level attribute without variables or
// functions and converts the resulting object through cty's JSON encoding,
// so numbers come back as float64 and objects as map[string]any.
func decodeHCL(data []byte, filename string) (any, error) {
	file, diags := hclsyntax.ParseConfig(data, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	vals := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		vals[name] = val
	}

	obj := cty.ObjectVal(vals)
	raw, err := ctyjson.Marshal(obj, obj.Type())
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", filename, err)
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
