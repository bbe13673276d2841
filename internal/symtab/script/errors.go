// Copyright 2015 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package script

import (
	"fmt"
	"strings"
)

// Position is the location of a statement in a script.
type Position struct {
	Filename string
	Line     int // 1-based
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.Filename, p.Line)
}

type scriptError struct {
	pos Position
	msg string
}

func (e scriptError) Error() string {
	return e.pos.String() + ": " + e.msg
}

// ErrorList contains the errors found while running a script.
type ErrorList []*scriptError

// Add appends an error at a position to the list of errors.
func (p *ErrorList) Add(pos Position, msg string) {
	*p = append(*p, &scriptError{pos, msg})
}

// Addf is Add with a format string.
func (p *ErrorList) Addf(pos Position, format string, args ...interface{}) {
	p.Add(pos, fmt.Sprintf(format, args...))
}

// ErrorList implements the error interface.
func (p ErrorList) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	}
	msgs := make([]string, len(p))
	for i, e := range p {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}
