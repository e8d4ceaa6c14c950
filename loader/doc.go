// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package loader assembles application configuration from a directory of
// per-topic files such as app.json, database.json and mail.json. Each file is
// decoded into a value stored under its name (the file name without the
// extension):
//
//	l := loader.New("/etc/myapp/config")
//	if err := l.LoadAll(); err != nil {
//		return err
//	}
//	host, err := l.GetString("database.host", "localhost")
//
// A name is read from disk at most once per Loader. Names supplied with
// WithConfig are never read at all, which makes the Loader easy to stub in
// tests.
//
// The file format defaults to JSON. YAML and HCL are available through
// WithFormat.
//
// A Loader is not safe for concurrent mutation. Load during initialization,
// then share it with readers.
package loader
