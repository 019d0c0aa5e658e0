// SPDX-License-Identifier: MIT
// Package: multipath/builder
//
// id_fn.go - vertex naming.
//
// Constructors number their vertices 0..n-1 and ask the configured IDFn for
// each name. With WithEndpointIDs the first and last vertex are renamed to
// SourceID and TargetID, which are the vertex names the CLI uses by default
// and the names the sample data files use.

package builder

import (
	"fmt"
	"strconv"
)

// Endpoint names assigned by WithEndpointIDs.
const (
	SourceID = "s"
	TargetID = "t"
)

const alphabet = 26

// IDFn maps a zero-based vertex index to its ID. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn names vertices "0", "1", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// SymbolIDFn names vertices "A".."Z". Panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx >= alphabet {
		panic(fmt.Sprintf("builder: SymbolIDFn index %d outside [0,%d]", idx, alphabet-1))
	}

	return ExcelColumnIDFn(idx)
}

// ExcelColumnIDFn names vertices "A".."Z", "AA", "AB", ... Panics on idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: ExcelColumnIDFn index %d is negative", idx))
	}
	// bijective base-26, filled from the right
	var buf [16]byte
	pos := len(buf)
	for n := idx + 1; n > 0; n = (n - 1) / alphabet {
		pos--
		buf[pos] = byte('A' + (n-1)%alphabet)
	}

	return string(buf[pos:])
}

// SymbolNumberIDFn names vertices prefix+"0", prefix+"1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: SymbolNumberIDFn index %d is negative", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// EndpointIDFn wraps inner for an n-vertex constructor: index 0 becomes
// SourceID and index n-1 becomes TargetID. With n == 1 the only vertex is
// SourceID. inner must not itself return "s" or "t".
func EndpointIDFn(n int, inner IDFn) IDFn {
	return func(idx int) string {
		switch idx {
		case 0:
			return SourceID
		case n - 1:
			return TargetID
		default:
			return inner(idx)
		}
	}
}

// WithSymbNumb is WithIDScheme(SymbolNumberIDFn(prefix)).
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }

// WithDefaultIDs restores DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs selects SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithEndpointIDs names the first vertex of every constructor SourceID and
// the last one TargetID, whatever the ID scheme. For Grid these are the
// top-left and bottom-right cells.
func WithEndpointIDs() BuilderOption {
	return func(c *builderConfig) {
		c.endpoints = true
	}
}

// vertexIDs returns the naming function for an n-vertex constructor.
func (c builderConfig) vertexIDs(n int) IDFn {
	if c.endpoints {
		return EndpointIDFn(n, c.idFn)
	}

	return c.idFn
}
