// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/confload/internal/log"
)

// Loader resolves configuration files beneath a base directory and caches
// their decoded content by name.
type Loader struct {
	basePath string
	format   Format
	config   map[string]any
}

// Option configures a Loader at construction.
type Option func(*Loader)

// WithConfig pre-seeds the cache. Seeded names are never read from disk.
// The map is copied; later changes to it do not reach the Loader.
func WithConfig(config map[string]any) Option {
	return func(l *Loader) {
		maps.Copy(l.config, config)
	}
}

// WithFormat selects the file format. A format without extensions or a
// decoder is ignored.
func WithFormat(format Format) Option {
	return func(l *Loader) {
		if len(format.Extensions) == 0 || format.Decode == nil {
			log.Warnf("ignoring incomplete config format %q", format.Name)
			return
		}
		l.format = format
	}
}

// New returns a Loader rooted at basePath. Nothing is read until Load or
// LoadAll is called.
func New(basePath string, opts ...Option) *Loader {
	l := &Loader{
		basePath: basePath,
		format:   JSON,
		config:   map[string]any{},
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// BasePath returns the base path. Each suffix, if any, is appended after a
// platform path separator. The result is not cleaned or checked for
// existence.
func (l *Loader) BasePath(suffix ...string) string {
	path := l.basePath
	for _, s := range suffix {
		path += string(os.PathSeparator) + s
	}
	return path
}

// Format returns the file format in use.
func (l *Loader) Format() Format {
	return l.format
}

// Load reads and decodes the file for name unless name is already cached.
// A missing file yields *ConfigNotFoundError and undecodable content
// *ConfigParseError. The cache is unchanged on error.
func (l *Loader) Load(name string) error {
	if _, ok := l.config[name]; ok {
		log.Tracef("config cache hit: name=%s", name)
		return nil
	}

	path, err := l.configPath(name)
	if err != nil {
		log.WithError(err).Debugf("config load failed: name=%s", name)
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	value, err := l.format.Decode(data, path)
	if err != nil {
		log.WithError(err).Debugf("config parse failed: name=%s path=%s", name, path)
		return &ConfigParseError{Name: name, Path: path, Err: err}
	}

	l.config[name] = value
	log.Debugf("config loaded: name=%s path=%s size=%s", name, path, humanize.Bytes(uint64(len(data))))

	return nil
}

// LoadAll loads every file directly beneath the base path whose extension
// belongs to the format, in file name order. Already cached names are
// skipped. The first failure stops the batch; files loaded before it stay
// cached.
func (l *Loader) LoadAll() error {
	dir := l.BasePath()

	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to list config directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		switch {
		case entry.Type().IsRegular():
		case entry.Type()&fs.ModeSymlink != 0:
			// Follow the link; dangling links and links to directories are
			// not config files.
			info, err := os.Stat(l.BasePath(entry.Name()))
			if err != nil || info.IsDir() {
				log.Debugf("skipping symlink %s", entry.Name())
				continue
			}
		default:
			continue
		}
		if name, ok := l.format.trimExt(entry.Name()); ok && !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return &ConfigDirectoryEmptyError{Path: dir}
	}

	log.Debugf("loading %d config files from %s", len(names), dir)
	for _, name := range names {
		if err := l.Load(name); err != nil {
			return err
		}
	}

	return nil
}

// Config returns a copy of the cached configuration keyed by name. The
// values themselves are shared with the cache.
func (l *Loader) Config() map[string]any {
	return maps.Clone(l.config)
}

// Has reports whether name is cached.
func (l *Loader) Has(name string) bool {
	_, ok := l.config[name]
	return ok
}

// Names returns the cached names in sorted order.
func (l *Loader) Names() []string {
	return slices.Sorted(maps.Keys(l.config))
}

// configPath returns the first existing file for name across the format's
// extensions.
func (l *Loader) configPath(name string) (string, error) {
	primary := l.BasePath(name + l.format.ext())

	for _, ext := range l.format.Extensions {
		path := l.BasePath(name + ext)
		info, err := os.Stat(path)
		switch {
		case err == nil && !info.IsDir():
			return path, nil
		case errors.Is(err, fs.ErrPermission):
			return "", fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	return "", &ConfigNotFoundError{Name: name, Path: primary}
}
