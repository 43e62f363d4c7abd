// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asserr provides small generic helpers for the "log and
// propagate" and "log and zero-value" error patterns used throughout
// this module's CLI and convenience layers. Library packages (parser,
// analyzer, pipeline) never call into this package themselves -- they
// return errors and diagnostics as values. asserr is for call sites
// that sit above the library boundary.
package asserr

import (
	"log/slog"
	"runtime"
	"strconv"
)

// Log logs the given error, if non-nil, and returns it unchanged.
// Intended usage:
//
//	return asserr.Log(doThing())
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 returns v if err is nil; otherwise it logs err and returns the
// zero value of T. Intended usage:
//
//	cfg := asserr.Log1(loadConfig(path))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
		var zero T
		return zero
	}
	return v
}

// Must1 returns v if err is nil; otherwise it panics. Reserved for
// programmer-error invariants where recovery is meaningless (e.g.
// constructing a render context with a validated-elsewhere size).
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// CallerInfo describes the caller of the function that called
// CallerInfo, for inclusion in log lines.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	name := "?"
	if fn != nil {
		name = fn.Name()
	}
	return name + " " + file + ":" + strconv.Itoa(line)
}
