// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below via errors.Is.
var (
	ErrConfigNotFound       = errors.New("config not found")
	ErrConfigDirectoryEmpty = errors.New("config directory empty")
	ErrConfigParse          = errors.New("config parse failed")
	ErrKeyNotFound          = errors.New("key not found")
	ErrTypeMismatch         = errors.New("type mismatch")
)

// ConfigNotFoundError is returned by Load when no file exists for a name.
type ConfigNotFoundError struct {
	Name string
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("cannot load configuration file [%s] from path: [%s]", e.Name, e.Path)
}

func (e *ConfigNotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// ConfigDirectoryEmptyError is returned by LoadAll when the base path holds
// no file with the format's extension.
type ConfigDirectoryEmptyError struct {
	Path string
}

func (e *ConfigDirectoryEmptyError) Error() string {
	return fmt.Sprintf("could not load config files from [%s], please ensure they exist", e.Path)
}

func (e *ConfigDirectoryEmptyError) Is(target error) bool {
	return target == ErrConfigDirectoryEmpty
}

// ConfigParseError is returned by Load when a file exists but its content
// cannot be decoded.
type ConfigParseError struct {
	Name string
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("failed to parse configuration file [%s] at [%s]: %v", e.Name, e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

func (e *ConfigParseError) Is(target error) bool {
	return target == ErrConfigParse
}

// KeyNotFoundError is returned by the typed getters when a path resolves to
// nothing and no default was given.
type KeyNotFoundError struct {
	Path string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("no value found at path: %s", e.Path)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// TypeMismatchError is returned by the typed getters when a value exists but
// has the wrong type.
type TypeMismatchError struct {
	Path string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value at %s is not %s (got %s)", e.Path, e.Want, e.Got)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
