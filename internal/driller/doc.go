// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller walks JSON documents with dotted paths so that loaded
// configuration can be read without type assertions at every level.
package driller
