// Copyright 2021 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package testutil

import (
	"expvar"
	"testing"

	"github.com/golang/glog"
)

// TestGetExpvar fetches the expvar metric `name`, and returns the expvar.
// Callers are responsible for type assertions on the returned value.
func TestGetExpvar(tb testing.TB, name string) expvar.Var {
	tb.Helper()
	v := expvar.Get(name)
	glog.Infof("Var %q is %v", name, v)
	return v
}

// ExpectExpvarDelta returns a deferrable function which tests if the expvar
// metric with name has changed by want since ExpectExpvarDelta was called.
func ExpectExpvarDelta(tb testing.TB, name string, want int64) func() {
	tb.Helper()
	start := TestGetExpvar(tb, name).(*expvar.Int).Value()
	return func() {
		tb.Helper()
		now := TestGetExpvar(tb, name).(*expvar.Int).Value()
		if now-start != want {
			tb.Errorf("%s changed by %d (%v - %v), want %d", name, now-start, now, start, want)
		}
	}
}

// ExpectMapExpvarDelta is ExpectExpvarDelta for one key of an expvar.Map.
func ExpectMapExpvarDelta(tb testing.TB, name, key string, want int64) func() {
	tb.Helper()
	get := func() int64 {
		tb.Helper()
		v := TestGetExpvar(tb, name).(*expvar.Map).Get(key)
		if v == nil {
			return 0
		}
		return v.(*expvar.Int).Value()
	}
	start := get()
	return func() {
		tb.Helper()
		now := get()
		if now-start != want {
			tb.Errorf("%s[%s] changed by %d (%v - %v), want %d", name, key, now-start, now, start, want)
		}
	}
}
