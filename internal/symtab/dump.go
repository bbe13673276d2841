// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package symtab

import (
	"bytes"
	"fmt"
	"io"

	"github.com/golang/glog"
)

// Fprint writes every slot of the table, occupied or not, in index order.
// This is only used for debugging.
func (t *Table) Fprint(w io.Writer) error {
	t.checkActive()
	if _, err := fmt.Fprintf(w, "%s: %d/%d\n", t.name, t.size, len(t.slots)); err != nil {
		return err
	}
	for i, e := range t.slots {
		var err error
		if e.occupied {
			_, err = fmt.Fprintf(w, "table[%2d] = {%d, %s, %s, %g}\n", i, e.Code, e.Identifier, e.Type, e.Value)
		} else {
			_, err = fmt.Fprintf(w, "table[%2d] = {}\n", i)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) String() string {
	var b bytes.Buffer
	if err := t.Fprint(&b); err != nil {
		glog.Infof("print error: %s", err)
	}
	return b.String()
}
