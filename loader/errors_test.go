// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package loader

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
		sentinel error
	}{
		{
			name:     "not found",
			err:      &ConfigNotFoundError{Name: "testing", Path: "/etc/app/testing.json"},
			contains: []string{"[testing]", "[/etc/app/testing.json]"},
			sentinel: ErrConfigNotFound,
		},
		{
			name:     "directory empty",
			err:      &ConfigDirectoryEmptyError{Path: "/etc/app"},
			contains: []string{"[/etc/app]", "please ensure they exist"},
			sentinel: ErrConfigDirectoryEmpty,
		},
		{
			name:     "parse",
			err:      &ConfigParseError{Name: "app", Path: "/etc/app/app.json", Err: errors.New("unexpected end")},
			contains: []string{"[app]", "[/etc/app/app.json]", "unexpected end"},
			sentinel: ErrConfigParse,
		},
		{
			name:     "key not found",
			err:      &KeyNotFoundError{Path: "app.name"},
			contains: []string{"app.name"},
			sentinel: ErrKeyNotFound,
		},
		{
			name:     "type mismatch",
			err:      &TypeMismatchError{Path: "app.port", Want: "string", Got: "number"},
			contains: []string{"app.port", "string", "number"},
			sentinel: ErrTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.contains {
				assert.Contains(t, tt.err.Error(), s)
			}
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.ErrorIs(t, fmt.Errorf("bootstrap: %w", tt.err), tt.sentinel)
		})
	}
}

func TestConfigParseError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ConfigParseError{Name: "app", Path: "app.json", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrConfigNotFound)
}
