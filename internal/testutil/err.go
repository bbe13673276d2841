// Copyright 2020 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package testutil

import (
	"strings"
	"testing"
)

// FatalIfErr fails the test with a fatal error if err is not nil.
func FatalIfErr(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatal(err)
	}
}

// ExpectPanic fails the test unless f panics with a message containing want.
func ExpectPanic(tb testing.TB, want string, f func()) {
	tb.Helper()
	defer func() {
		tb.Helper()
		r := recover()
		if r == nil {
			tb.Errorf("expected panic containing %q, got none", want)
			return
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, want) {
			tb.Errorf("panic %v does not contain %q", r, want)
		}
	}()
	f()
}
