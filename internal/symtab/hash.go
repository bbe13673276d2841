// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package symtab

// hashBase is the multiplier of the polynomial rolling hash.
const hashBase = 31

// Hash computes the code for identifier as sum(c[i] * 31^(n-1-i)) over its
// bytes.  Arithmetic wraps at 32 bits, so the result matches the familiar
// Java String.hashCode for ASCII identifiers.  Bytes are taken as unsigned,
// so identifiers outside ASCII hash differently from a signed char build.
func Hash(identifier string) int32 {
	var code int32
	for i := 0; i < len(identifier); i++ {
		code = code*hashBase + int32(identifier[i])
	}
	return code
}

// index maps a hash code onto a slot.  The remainder is taken before the
// absolute value so that math.MinInt32 cannot overflow.
func (t *Table) index(code int32) int {
	i := int(code) % len(t.slots)
	if i < 0 {
		i = -i
	}
	return i
}

// next returns the slot after i, wrapping at the end of the table.
func (t *Table) next(i int) int {
	i++
	if i >= len(t.slots) {
		i = 0
	}
	return i
}
