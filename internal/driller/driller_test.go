// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package driller

import (
	"embed"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// drillCase represents a single test case for TestDrill.
type drillCase struct {
	Name        string                 `yaml:"name"`
	JSON        map[string]interface{} `yaml:"json"`
	Path        string                 `yaml:"path"`
	ExpectedStr string                 `yaml:"expectedStr"`
	IsNil       bool                   `yaml:"isNil"`
	IsArray     bool                   `yaml:"isArray"`
	IsObject    bool                   `yaml:"isObject"`
}

func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestDrill(t *testing.T) {
	var tests []drillCase
	require.NoError(t, loadTestData("driller_cases.yaml", &tests))
	require.NotEmpty(t, tests)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			doc, err := json.Marshal(tt.JSON)
			require.NoError(t, err)

			result := Drill(string(doc), tt.Path)

			switch {
			case tt.IsNil:
				assert.False(t, result.Exists(), "expected no result, got %v", result.Value())
			case tt.IsArray:
				require.True(t, result.Exists())
				assert.True(t, result.IsArray(), "expected array, got %v", result.Value())
			case tt.IsObject:
				require.True(t, result.Exists())
				assert.True(t, result.IsObject(), "expected object, got %v", result.Value())
			default:
				require.True(t, result.Exists(), "expected a result")
				assert.Equal(t, tt.ExpectedStr, result.String())
			}
		})
	}
}

func TestDrill_InvalidDocument(t *testing.T) {
	assert.False(t, Drill("not json", "app.name").Exists())
	assert.False(t, Drill("", "app").Exists())
}

func TestHead(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{path: "app.name", want: "app", ok: true},
		{path: "app", want: "app", ok: true},
		{path: "hosts[1].name", want: "hosts", ok: true},
		{path: `app\.local.name`, want: "app.local", ok: true},
		{path: `a\.b\.c`, want: "a.b.c", ok: true},
		{path: "", ok: false},
		{path: "na me.x", ok: false},
		{path: ".name", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := Head(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
