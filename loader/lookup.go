// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/tfctl/confload/internal/driller"
	"github.com/tfctl/confload/internal/log"
)

// Lookup resolves a dotted path such as "database.connections[0].host"
// against the cached configuration. The first segment is a configuration
// name. A dot inside a key or name is escaped, as in `app\.local.name`.
// Lookup never loads files. It reports false when nothing is found or the
// named configuration cannot be encoded as JSON.
func (l *Loader) Lookup(path string) (any, bool) {
	result, err := l.drill(path)
	if err != nil || !result.Exists() {
		return nil, false
	}
	return result.Value(), true
}

// GetString returns the string at path. When the path is missing (or null)
// and a single defaultValue is given, the default is returned. Other errors
// are returned even when a default is given.
func (l *Loader) GetString(path string, defaultValue ...string) (string, error) {
	result, err := l.resolve(path)
	if err != nil {
		if len(defaultValue) == 1 && errors.Is(err, ErrKeyNotFound) {
			return defaultValue[0], nil
		}
		return "", err
	}

	if result.Type != gjson.String {
		return "", &TypeMismatchError{Path: path, Want: "string", Got: kind(result)}
	}
	return result.Str, nil
}

// GetInt returns the integer at path. Fractional numbers are truncated.
func (l *Loader) GetInt(path string, defaultValue ...int) (int, error) {
	result, err := l.resolve(path)
	if err != nil {
		if len(defaultValue) == 1 && errors.Is(err, ErrKeyNotFound) {
			return defaultValue[0], nil
		}
		return 0, err
	}

	if result.Type != gjson.Number {
		return 0, &TypeMismatchError{Path: path, Want: "number", Got: kind(result)}
	}
	return int(result.Int()), nil
}

// GetBool returns the boolean at path.
func (l *Loader) GetBool(path string, defaultValue ...bool) (bool, error) {
	result, err := l.resolve(path)
	if err != nil {
		if len(defaultValue) == 1 && errors.Is(err, ErrKeyNotFound) {
			return defaultValue[0], nil
		}
		return false, err
	}

	if !result.IsBool() {
		return false, &TypeMismatchError{Path: path, Want: "bool", Got: kind(result)}
	}
	return result.Bool(), nil
}

// GetStringSlice returns the list of strings at path. A lone string is
// returned as a one element slice, which also covers single element arrays
// that path navigation unwraps.
func (l *Loader) GetStringSlice(path string, defaultValue ...[]string) ([]string, error) {
	result, err := l.resolve(path)
	if err != nil {
		if len(defaultValue) == 1 && errors.Is(err, ErrKeyNotFound) {
			return defaultValue[0], nil
		}
		return nil, err
	}

	switch {
	case result.Type == gjson.String:
		return []string{result.Str}, nil
	case result.IsArray():
		items := result.Array()
		out := make([]string, 0, len(items))
		for _, item := range items {
			if item.Type != gjson.String {
				return nil, &TypeMismatchError{Path: path, Want: "string slice", Got: "array of " + kind(item)}
			}
			out = append(out, item.Str)
		}
		return out, nil
	default:
		return nil, &TypeMismatchError{Path: path, Want: "string slice", Got: kind(result)}
	}
}

// resolve drills to path, reporting a missing or null value as
// *KeyNotFoundError.
func (l *Loader) resolve(path string) (gjson.Result, error) {
	result, err := l.drill(path)
	if err != nil {
		return gjson.Result{}, err
	}
	if !result.Exists() || result.Type == gjson.Null {
		return gjson.Result{}, &KeyNotFoundError{Path: path}
	}
	return result, nil
}

// drill encodes only the configuration named by the first path segment, so
// a value that cannot be represented as JSON affects lookups under its own
// name only.
func (l *Loader) drill(path string) (gjson.Result, error) {
	name, ok := driller.Head(path)
	if !ok {
		return gjson.Result{}, nil
	}
	value, ok := l.config[name]
	if !ok {
		return gjson.Result{}, nil
	}

	doc, err := json.Marshal(map[string]any{name: value})
	if err != nil {
		log.WithError(err).Debugf("config is not representable as JSON: name=%s", name)
		return gjson.Result{}, fmt.Errorf("failed to encode config %s for lookup: %w", name, err)
	}
	log.Tracef("drilling config: path=%s", path)
	return driller.Drill(string(doc), path), nil
}

func kind(r gjson.Result) string {
	switch {
	case r.IsObject():
		return "object"
	case r.IsArray():
		return "array"
	case r.IsBool():
		return "bool"
	}
	switch r.Type {
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	case gjson.Null:
		return "null"
	}
	return r.Type.String()
}
