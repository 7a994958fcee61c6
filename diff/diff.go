// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// reversible element-level differences for collection-valued
// account attributes
//
// a diff list applied and then applied again in reversed-sign form
// restores the original collection exactly
package diff

import (
	"github.com/celestium/celestiumd/fault"
)

// Sign - marks an entry as an insertion or a removal
type Sign int

// the two possible operations
const (
	Add Sign = iota + 1
	Remove
)

// Entry - one reversible mutation step on a collection
type Entry struct {
	Sign  Sign
	Value string
}

// NewEntry - build an entry from a sign marker and an element
func NewEntry(sign Sign, value string) Entry {
	return Entry{Sign: sign, Value: value}
}

// Apply - walk a diff list in order against a base collection
//
// entries marked Add are appended, entries marked Remove delete the
// first occurrence of their value; removal of an absent value is a
// no-op so that confirmed history can be replayed
func Apply(collection []string, diffs []Entry) []string {
	result := make([]string, len(collection))
	copy(result, collection)

	for _, d := range diffs {
		switch d.Sign {
		case Add:
			result = append(result, d.Value)
		case Remove:
			for i, v := range result {
				if v == d.Value {
					result = append(result[:i], result[i+1:]...)
					break
				}
			}
		}
	}
	return result
}

// Reverse - flip the sign of every entry, preserving order
func Reverse(diffs []Entry) []Entry {
	result := make([]Entry, len(diffs))
	for i, d := range diffs {
		switch d.Sign {
		case Add:
			result[i] = Entry{Sign: Remove, Value: d.Value}
		case Remove:
			result[i] = Entry{Sign: Add, Value: d.Value}
		}
	}
	return result
}

// String - the sign-prefixed textual form, e.g. "+1234C"
func (e Entry) String() string {
	if Remove == e.Sign {
		return "-" + e.Value
	}
	return "+" + e.Value
}

// MarshalText - convert an entry to its sign-prefixed JSON form
func (e Entry) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText - parse the sign-prefixed textual form
func (e *Entry) UnmarshalText(s []byte) error {
	if len(s) < 2 {
		return fault.ErrInvalidDiffEntry
	}
	switch s[0] {
	case '+':
		e.Sign = Add
	case '-':
		e.Sign = Remove
	default:
		return fault.ErrInvalidDiffEntry
	}
	e.Value = string(s[1:])
	return nil
}
