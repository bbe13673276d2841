// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package symtab provides a fixed capacity, hash indexed symbol table for
// recording the identifiers declared in a program, their types, and their
// current values.
//
// Collisions are resolved by linear probing.  The table never grows and
// entries are never removed; the whole table is released at once by
// Terminate.  A Table is not safe for concurrent use.
package symtab

import (
	"expvar"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

var (
	// insertTotal counts the identifiers stored in any table.
	insertTotal = expvar.NewInt("symtab_inserts_total")
	// insertFullTotal counts inserts refused because the table was full.
	insertFullTotal = expvar.NewInt("symtab_insert_full_total")
	// probeCollisions counts occupied slots stepped over while probing.
	probeCollisions = expvar.NewInt("symtab_probe_collisions_total")
	// lookupTotal counts searches, keyed by outcome.
	lookupTotal = expvar.NewMap("symtab_lookups_total")
)

const defaultName = "symtab"

// Entry is a single slot of the table.
type Entry struct {
	Code       int32   // hash code of Identifier
	Type       Type    // declared type, fixed at insert
	Value      float64 // current value, zero until assigned
	Identifier string  // name as declared

	occupied bool
}

// Table is a fixed capacity symbol table.
type Table struct {
	name     string
	codeOnly bool

	size  int
	slots []Entry

	terminated bool
}

// New creates an empty Table with room for capacity identifiers.
func New(capacity int, opts ...Option) (*Table, error) {
	if capacity <= 0 {
		return nil, errors.Errorf("capacity must be positive, got %d", capacity)
	}
	t := &Table{
		name:  defaultName,
		slots: make([]Entry, capacity),
	}
	for _, opt := range opts {
		if err := opt.apply(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// With creates a Table, passes it to f, and terminates it when f returns or
// panics.  The error from f is returned.
func With(capacity int, f func(*Table) error, opts ...Option) error {
	t, err := New(capacity, opts...)
	if err != nil {
		return err
	}
	defer t.Terminate()
	return f(t)
}

func (t *Table) checkActive() {
	if t.terminated {
		panic("symtab: use of terminated table " + t.name)
	}
}

// Name returns the name the table was created with.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of occupied slots.
func (t *Table) Len() int {
	t.checkActive()
	return t.size
}

// Cap returns the fixed number of slots.
func (t *Table) Cap() int {
	t.checkActive()
	return len(t.slots)
}

// IsFull reports whether every slot is occupied.
func (t *Table) IsFull() bool {
	t.checkActive()
	return t.size == len(t.slots)
}

// Insert stores identifier with type typ in the first free slot at or after
// its home index.  It returns false, leaving the table unchanged, if the
// table is full.  Insert does not check for an existing entry of the same
// name: callers that need uniqueness must Search first.
func (t *Table) Insert(identifier string, typ Type) bool {
	t.checkActive()
	if t.size == len(t.slots) {
		insertFullTotal.Add(1)
		glog.V(1).Infof("%s: table full, dropping %q", t.name, identifier)
		return false
	}
	code := Hash(identifier)
	i := t.index(code)
	// Terminates because size < capacity guarantees a free slot.
	for t.slots[i].occupied {
		probeCollisions.Add(1)
		glog.V(2).Infof("%s: slot %d taken by %q, probing", t.name, i, t.slots[i].Identifier)
		i = t.next(i)
	}
	t.slots[i] = Entry{
		Code:       code,
		Type:       typ,
		Identifier: identifier,
		occupied:   true,
	}
	t.size++
	insertTotal.Add(1)
	glog.V(2).Infof("%s: inserted %q (%s) code %d at slot %d", t.name, identifier, typ, code, i)
	return true
}

// Search returns the slot index holding identifier.  The second result is
// false, and the index -1, if identifier is not in the table.
func (t *Table) Search(identifier string) (int, bool) {
	t.checkActive()
	code := Hash(identifier)
	start := t.index(code)
	for i := start; t.slots[i].occupied; {
		if t.matches(&t.slots[i], code, identifier) {
			lookupTotal.Add("found", 1)
			return i, true
		}
		i = t.next(i)
		if i == start {
			break
		}
	}
	lookupTotal.Add("missing", 1)
	return -1, false
}

func (t *Table) matches(e *Entry, code int32, identifier string) bool {
	if e.Code != code {
		return false
	}
	return t.codeOnly || e.Identifier == identifier
}

// Assign sets the value of identifier.  It returns false if identifier is
// not in the table, in which case nothing is changed.
func (t *Table) Assign(identifier string, value float64) bool {
	i, ok := t.Search(identifier)
	if !ok {
		return false
	}
	t.slots[i].Value = value
	return true
}

// Value returns the current value of identifier, or zero if it is not in the
// table.  Use Search or Match to tell the two apart.
func (t *Table) Value(identifier string) float64 {
	i, ok := t.Search(identifier)
	if !ok {
		return 0
	}
	return t.slots[i].Value
}

// Match reports whether identifier is in the table with type typ.
func (t *Table) Match(identifier string, typ Type) bool {
	i, ok := t.Search(identifier)
	return ok && t.slots[i].Type == typ
}

// Entry returns a copy of slot i, and whether that slot is occupied.
func (t *Table) Entry(i int) (Entry, bool) {
	t.checkActive()
	if i < 0 || i >= len(t.slots) {
		return Entry{}, false
	}
	return t.slots[i], t.slots[i].occupied
}

// Terminate releases the identifiers and slots held by the table.  The table
// must not be used afterwards; every method except Name panics.
func (t *Table) Terminate() {
	t.checkActive()
	glog.V(1).Infof("%s: terminating with %d of %d slots used", t.name, t.size, len(t.slots))
	for i := range t.slots {
		t.slots[i] = Entry{}
	}
	t.slots = nil
	t.size = 0
	t.terminated = true
}
