// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asstag implements the override-tag sub-language (C4): splitting
// a `{...}` override block into a sequence of `\name(args)` tags and
// resolving each name against a process-wide registry of handlers that
// declare their own argument schema. The registry is append-only after
// process start, the same convention assparse.RegisterSection uses for
// custom sections (spec section 9).
package asstag

import (
	"strings"
	"sync"

	"github.com/subforge/asscore/assast"
)

// ArgKind discriminates one declared argument slot in a Schema.
type ArgKind int

const (
	ArgFloat ArgKind = iota
	ArgInt
	ArgString
	ArgDrawing // a \p-style drawing-command body, parsed elsewhere (assshape)
)

// ArgSlot declares one positional argument a tag handler accepts.
type ArgSlot struct {
	Kind     ArgKind
	Optional bool
}

// Schema is a tag's declared argument list, e.g. pos(float,float) or
// move(float,float,float,float,optional float,optional float).
type Schema []ArgSlot

// TagArgument is one parsed, typed argument value.
type TagArgument struct {
	Kind ArgKind
	F    float64
	I    int64
	S    string
}

// Handler is implemented by every registered tag. ParseArgs receives the
// tag's raw argument bytes (parentheses included, see ScanBlock) and
// parses them against the handler's own Schema; a handler with no
// meaningful arguments (e.g. \r) may just return nil, nil.
type Handler interface {
	Name() string
	Schema() Schema
	ParseArgs(src []byte, args assast.Span) ([]TagArgument, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Handler{}
)

// RegisterTag adds h to the process-wide registry, keyed by its
// lowercased Name(). Intended to run at process start (package init
// functions for built-ins, or a plugin's own init for third-party tags);
// registering the same name twice replaces the previous handler.
func RegisterTag(h Handler) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(h.Name())] = h
}

// Lookup resolves a lowercase tag name to its registered Handler in O(1).
func Lookup(name string) (Handler, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	h, ok := registry[strings.ToLower(name)]
	return h, ok
}
