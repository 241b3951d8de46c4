// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "fmt"

// LoadError reports a malformed or missing source file, column, or value.
// A load either returns a complete dataset or fails with a LoadError;
// there is no partially loaded state.
type LoadError struct {
	Source string // file or table the error came from
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadErrf(source, format string, args ...interface{}) error {
	return &LoadError{Source: source, Err: fmt.Errorf(format, args...)}
}
