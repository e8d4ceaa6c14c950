// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package differ compares two accumulated configurations, typically the
// Config of two Loaders rooted at different environments.
package differ

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tfctl/confload/internal/log"
)

// Options controls Compare and Format.
type Options struct {
	// Ignore lists configuration names left out of the comparison.
	Ignore []string
	// Color enables ANSI coloring of the formatted delta.
	Color bool
}

// Result holds the delta between two configurations.
type Result struct {
	left  map[string]any
	delta gojsondiff.Diff
	color bool
}

// Compare computes the structural delta from left to right.
func Compare(left, right map[string]any, opts Options) (*Result, error) {
	log.Debugf(">> differ.Compare(): left=%d right=%d", len(left), len(right))

	left = without(left, opts.Ignore)
	right = without(right, opts.Ignore)

	lb, err := json.Marshal(left)
	if err != nil {
		return nil, fmt.Errorf("failed to encode left config: %w", err)
	}
	rb, err := json.Marshal(right)
	if err != nil {
		return nil, fmt.Errorf("failed to encode right config: %w", err)
	}

	delta, err := gojsondiff.New().Compare(lb, rb)
	if err != nil {
		return nil, fmt.Errorf("failed to compare configs: %w", err)
	}

	// The formatter walks the left document alongside the delta, so it must
	// see the same JSON shapes the differ saw.
	var doc map[string]any
	if err := json.Unmarshal(lb, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode left config: %w", err)
	}

	return &Result{left: doc, delta: delta, color: opts.Color}, nil
}

// Modified reports whether the two configurations differ.
func (r *Result) Modified() bool {
	return r.delta.Modified()
}

// Format renders the delta in gojsondiff's ASCII form, one line per value
// with +/- markers on changed lines.
func (r *Result) Format() (string, error) {
	f := formatter.NewAsciiFormatter(r.left, formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       r.color,
	})
	return f.Format(r.delta)
}

func without(config map[string]any, names []string) map[string]any {
	out := maps.Clone(config)
	if out == nil {
		out = map[string]any{}
	}
	for _, name := range names {
		delete(out, name)
	}
	return out
}
