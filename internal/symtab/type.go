// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package symtab

import (
	"strings"

	"github.com/pkg/errors"
)

// Type is the semantic type tag of an identifier.
type Type int

// Type enumerates the identifier types understood by the table.  Undef is
// the zero value and only appears in slots that were never filled.
const (
	Undef Type = iota
	Integer
	Float
)

func (t Type) String() string {
	switch t {
	case Undef:
		return "undef"
	case Integer:
		return "integer"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// ParseType returns the Type named by s.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "int", "integer":
		return Integer, nil
	case "float":
		return Float, nil
	}
	return Undef, errors.Errorf("unknown type %q", s)
}
