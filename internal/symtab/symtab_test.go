// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package symtab

import (
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"testing/quick"

	"github.com/pkg/errors"
	"github.com/symtab/symtab/internal/testutil"
)

func newTable(tb testing.TB, capacity int, opts ...Option) *Table {
	tb.Helper()
	tab, err := New(capacity, opts...)
	testutil.FatalIfErr(tb, err)
	return tab
}

var hashTests = []struct {
	identifier string
	want       int32
}{
	{"", 0},
	{"a", 97},
	{"x", 120},
	{"Aa", 2112},
	{"BB", 2112},
	{"hello", 99162322},
	{"polygenelubricants", math.MinInt32},
	{"pollinating sandboxes", 0},
	{"é", 6214}, // 0xc3*31 + 0xa9
}

func TestHash(t *testing.T) {
	for _, tc := range hashTests {
		tc := tc
		t.Run(tc.identifier, func(t *testing.T) {
			if got := Hash(tc.identifier); got != tc.want {
				t.Errorf("Hash(%q) = %d, want %d", tc.identifier, got, tc.want)
			}
		})
	}
}

func TestHashDeterministicQuick(t *testing.T) {
	check := func(s string) bool {
		return Hash(s) == Hash(s)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Error(err)
	}
}

func TestIndex(t *testing.T) {
	tab := newTable(t, 20)
	for _, tc := range []struct {
		code int32
		want int
	}{
		{0, 0},
		{120, 0},
		{97, 17},
		{-97, 17},
		{math.MinInt32, 8},
		{math.MaxInt32, 7},
	} {
		if got := tab.index(tc.code); got != tc.want {
			t.Errorf("index(%d) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestNewBadCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		if _, err := New(c); err == nil {
			t.Errorf("New(%d) succeeded, want error", c)
		}
	}
	if _, err := New(1, Name("")); err == nil {
		t.Error("New with empty name succeeded, want error")
	}
}

func TestInsertSearchScenario(t *testing.T) {
	tab := newTable(t, 20)
	if !tab.Insert("x", Integer) {
		t.Fatal("Insert(x) failed")
	}
	i, ok := tab.Search("x")
	if !ok {
		t.Fatal("x not found")
	}
	e, occupied := tab.Entry(i)
	if !occupied {
		t.Fatalf("slot %d not occupied", i)
	}
	testutil.ExpectNoDiff(t, Entry{Code: 120, Type: Integer, Identifier: "x"}, e, testutil.IgnoreUnexported(Entry{}))
	if v := tab.Value("x"); v != 0 {
		t.Errorf("Value(x) = %g, want 0", v)
	}
	if !tab.Assign("x", 3.5) {
		t.Fatal("Assign(x) failed")
	}
	if v := tab.Value("x"); v != 3.5 {
		t.Errorf("Value(x) = %g, want 3.5", v)
	}
	if tab.Match("x", Float) {
		t.Error("Match(x, Float) = true")
	}
	if !tab.Match("x", Integer) {
		t.Error("Match(x, Integer) = false")
	}
	if e, _ := tab.Entry(i); e.Type != Integer {
		t.Errorf("Assign changed type to %s", e.Type)
	}
}

func TestInsertFull(t *testing.T) {
	tab := newTable(t, 2)
	defer testutil.ExpectExpvarDelta(t, "symtab_insert_full_total", 1)()
	if !tab.Insert("a", Integer) {
		t.Error("Insert(a) failed")
	}
	if !tab.Insert("b", Integer) {
		t.Error("Insert(b) failed")
	}
	if !tab.IsFull() {
		t.Error("table not full")
	}
	before := tab.String()
	if tab.Insert("c", Integer) {
		t.Error("Insert(c) succeeded on full table")
	}
	if tab.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tab.Len())
	}
	testutil.ExpectNoDiff(t, before, tab.String())
}

func TestMissing(t *testing.T) {
	tab := newTable(t, 20)
	tab.Insert("x", Integer)
	defer testutil.ExpectMapExpvarDelta(t, "symtab_lookups_total", "missing", 4)()
	if i, ok := tab.Search("z"); ok || i != -1 {
		t.Errorf("Search(z) = %d, %v, want -1, false", i, ok)
	}
	if v := tab.Value("z"); v != 0 {
		t.Errorf("Value(z) = %g, want 0", v)
	}
	if tab.Match("z", Integer) {
		t.Error("Match(z, Integer) = true")
	}
	before := tab.String()
	if tab.Assign("z", 1) {
		t.Error("Assign(z) succeeded")
	}
	testutil.ExpectNoDiff(t, before, tab.String())
}

func TestSearchFullTableTerminates(t *testing.T) {
	tab := newTable(t, 2)
	tab.Insert("a", Integer)
	tab.Insert("b", Float)
	// "c" hashes to the slot holding "a" and every slot is occupied.
	if _, ok := tab.Search("c"); ok {
		t.Error("Search(c) found on a table without c")
	}
}

func TestLinearProbeWraps(t *testing.T) {
	tab := newTable(t, 20)
	defer testutil.ExpectExpvarDelta(t, "symtab_probe_collisions_total", 1)()
	// "c" hashes to the last slot, so the duplicate wraps to slot 0.
	tab.Insert("c", Integer)
	tab.Insert("c", Float)
	if tab.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tab.Len())
	}
	if e, ok := tab.Entry(0); !ok || e.Identifier != "c" || e.Type != Float {
		t.Errorf("slot 0 = %+v, %v", e, ok)
	}
	// The first entry wins.
	if i, ok := tab.Search("c"); !ok || i != 19 {
		t.Errorf("Search(c) = %d, %v, want 19, true", i, ok)
	}
	if !tab.Match("c", Integer) {
		t.Error("Match(c, Integer) = false")
	}
}

func TestCollidingCodes(t *testing.T) {
	tab := newTable(t, 20)
	tab.Insert("Aa", Integer)
	if _, ok := tab.Search("BB"); ok {
		t.Error("Search(BB) found the entry for Aa")
	}
	tab.Insert("BB", Float)
	if !tab.Match("BB", Float) {
		t.Error("Match(BB, Float) = false")
	}
	if !tab.Match("Aa", Integer) {
		t.Error("Match(Aa, Integer) = false")
	}
}

func TestCodeOnlyMatch(t *testing.T) {
	tab := newTable(t, 20, CodeOnlyMatch)
	tab.Insert("Aa", Integer)
	i, ok := tab.Search("BB")
	if !ok || i != 12 {
		t.Errorf("Search(BB) = %d, %v, want 12, true", i, ok)
	}
	tab.Assign("BB", 7)
	if v := tab.Value("Aa"); v != 7 {
		t.Errorf("Value(Aa) = %g, want 7", v)
	}
}

func TestZeroCodeIdentifier(t *testing.T) {
	tab := newTable(t, 20)
	tab.Insert("pollinating sandboxes", Float)
	if !tab.Match("pollinating sandboxes", Float) {
		t.Error("identifier with code 0 not found")
	}
	tab.Insert("x", Integer)
	if i, ok := tab.Search("x"); !ok || i != 1 {
		t.Errorf("Search(x) = %d, %v, want 1, true", i, ok)
	}
}

func TestFillExactly(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	tab := newTable(t, len(names))
	for i, n := range names {
		if tab.IsFull() {
			t.Fatalf("table full after %d inserts", i)
		}
		if !tab.Insert(n, Integer) {
			t.Fatalf("Insert(%s) failed", n)
		}
	}
	if !tab.IsFull() {
		t.Error("table not full")
	}
	seen := make(map[int]bool)
	for _, n := range names {
		i, ok := tab.Search(n)
		if !ok {
			t.Errorf("%s not found", n)
		}
		if seen[i] {
			t.Errorf("slot %d returned twice", i)
		}
		seen[i] = true
	}
}

// Generate implements the Generator interface for Type.
func (Type) Generate(rand *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(Type(rand.Intn(2) + 1))
}

func TestInsertSearchQuick(t *testing.T) {
	check := func(name string, typ Type, v float64) bool {
		tab, err := New(20)
		if err != nil {
			return false
		}
		if !tab.Insert(name, typ) {
			return false
		}
		if _, ok := tab.Search(name); !ok {
			return false
		}
		if !tab.Assign(name, v) {
			return false
		}
		return tab.Match(name, typ) && tab.Value(name) == v
	}
	q := &quick.Config{MaxCount: 10000}
	if testing.Short() {
		q.MaxCount = 100
	}
	if err := quick.Check(check, q); err != nil {
		t.Error(err)
	}
}

func TestTerminate(t *testing.T) {
	tab := newTable(t, 4, Name("test"))
	tab.Insert("x", Integer)
	tab.Terminate()
	if tab.Name() != "test" {
		t.Errorf("Name() = %q", tab.Name())
	}
	testutil.ExpectPanic(t, "terminated table test", func() { tab.Search("x") })
	testutil.ExpectPanic(t, "terminated table", func() { tab.Insert("y", Float) })
	testutil.ExpectPanic(t, "terminated table", func() { tab.Terminate() })
}

func TestWith(t *testing.T) {
	var held *Table
	err := With(3, func(tab *Table) error {
		held = tab
		tab.Insert("x", Integer)
		return errors.New("early exit")
	})
	if err == nil || err.Error() != "early exit" {
		t.Errorf("With returned %v", err)
	}
	if !held.terminated {
		t.Error("table not terminated after error")
	}

	testutil.ExpectPanic(t, "boom", func() {
		_ = With(3, func(tab *Table) error {
			held = tab
			panic("boom")
		})
	})
	if !held.terminated {
		t.Error("table not terminated after panic")
	}

	if err := With(0, func(*Table) error { return nil }); err == nil {
		t.Error("With(0) succeeded")
	}
}

func TestFprint(t *testing.T) {
	tab := newTable(t, 3, Name("decls"))
	tab.Insert("a", Integer) // 97 % 3 == 1
	tab.Assign("a", 2.5)
	want := strings.Join([]string{
		"decls: 1/3",
		"table[ 0] = {}",
		"table[ 1] = {97, a, integer, 2.5}",
		"table[ 2] = {}",
		"",
	}, "\n")
	var b strings.Builder
	testutil.FatalIfErr(t, tab.Fprint(&b))
	testutil.ExpectNoDiff(t, want, b.String())
}

func TestParseType(t *testing.T) {
	for in, want := range map[string]Type{"int": Integer, "INTEGER": Integer, "float": Float} {
		got, err := ParseType(in)
		testutil.FatalIfErr(t, err)
		if got != want {
			t.Errorf("ParseType(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseType("string"); err == nil {
		t.Error("ParseType(string) succeeded")
	}
}
