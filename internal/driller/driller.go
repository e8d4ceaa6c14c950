// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// segmentRE matches one path segment: a key optionally followed by [n], [*]
// or []. A literal dot inside a key is written as \.
var segmentRE = regexp.MustCompile(`^((?:[a-zA-Z0-9_-]|\\\.)+)(\[(\d+|\*)?\])?$`)

// split cuts path at every dot not preceded by a backslash.
func split(path string) []string {
	var parts []string
	var cur strings.Builder
	for i := 0; i < len(path); i++ {
		switch {
		case path[i] == '\\' && i+1 < len(path) && path[i+1] == '.':
			cur.WriteString(`\.`)
			i++
		case path[i] == '.':
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(path[i])
		}
	}
	return append(parts, cur.String())
}

// Head returns the unescaped key of the first path segment, so
// `app\.local.name` yields "app.local".
func Head(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	matches := segmentRE.FindStringSubmatch(split(path)[0])
	if len(matches) == 0 {
		return "", false
	}
	return strings.ReplaceAll(matches[1], `\.`, "."), true
}

// Drill navigates a JSON document along a dotted path such as
// "database.connections[1].host". Keys containing dots are escaped as in
// `app\.local.name`. An array reached without an index is unwrapped when it
// holds exactly one element and returned whole otherwise.
// [*] and [] always return the whole array. An empty Result is returned for a
// malformed path, a missing key or an out of range index.
func Drill(doc string, path string) gjson.Result {
	if path == "" {
		return gjson.Result{}
	}

	current := gjson.Parse(doc)

	for _, p := range split(path) {
		matches := segmentRE.FindStringSubmatch(p)
		if len(matches) == 0 {
			return gjson.Result{}
		}

		index := -1
		whole := matches[2] != "" && (matches[3] == "" || matches[3] == "*")
		if matches[3] != "" && matches[3] != "*" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		if !current.IsObject() {
			return gjson.Result{}
		}
		val := current.Get(matches[1])
		if !val.Exists() {
			return gjson.Result{}
		}

		if val.IsArray() {
			arr := val.Array()
			switch {
			case whole:
			case index == -1:
				if len(arr) == 1 {
					val = arr[0]
				}
			case index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		} else if index != -1 {
			return gjson.Result{}
		}

		current = val
	}

	return current
}
