// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package symtab

import "github.com/pkg/errors"

// Option configures a Table.
type Option interface {
	apply(*Table) error
}

// Name sets the name of the Table, used to label its metrics and log lines.
type Name string

func (opt Name) apply(t *Table) error {
	if opt == "" {
		return errors.New("table name must not be empty")
	}
	t.name = string(opt)
	return nil
}

type codeOnlyMatch struct{}

func (opt codeOnlyMatch) apply(t *Table) error {
	t.codeOnly = true
	return nil
}

// CodeOnlyMatch makes lookups compare hash codes only, never the stored
// identifier.  Two identifiers with colliding codes are then the same symbol.
var CodeOnlyMatch = &codeOnlyMatch{}
