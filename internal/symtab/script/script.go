// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package script runs simple declaration scripts against a symbol table, in
// the order a compiler front end would issue them.
//
// Each line holds one statement; blank lines and lines starting with # are
// skipped:
//
//	declare <int|float> <name>
//	assign <name> <number>
//	value <name>
//	search <name>
//	match <name> <int|float>
//	dump
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/symtab/symtab/internal/symtab"
)

type stmt struct {
	op   string
	args []string
	pos  Position
}

var arity = map[string]int{
	"declare": 2,
	"assign":  2,
	"value":   1,
	"search":  1,
	"match":   2,
	"dump":    0,
}

// Run executes the statements read from r against t, writing their results
// to w.  name is used in error positions.  Execution continues past failed
// statements; their errors are returned together as an ErrorList.
func Run(name string, r io.Reader, w io.Writer, t *symtab.Table) error {
	var errs ErrorList
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		st := stmt{fields[0], fields[1:], Position{name, line}}
		n, ok := arity[st.op]
		if !ok {
			errs.Addf(st.pos, "unknown statement %q", st.op)
			continue
		}
		if len(st.args) != n {
			errs.Addf(st.pos, "%s takes %d arguments, got %d", st.op, n, len(st.args))
			continue
		}
		if err := exec(st, w, t); err != nil {
			glog.V(1).Infof("%s: %s", st.pos, err)
			errs.Add(st.pos, err.Error())
		}
	}
	if err := s.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func exec(st stmt, w io.Writer, t *symtab.Table) (err error) {
	switch st.op {
	case "declare":
		typ, perr := symtab.ParseType(st.args[0])
		if perr != nil {
			return perr
		}
		id := st.args[1]
		if _, found := t.Search(id); found {
			return errors.Errorf("%s redeclared", id)
		}
		if !t.Insert(id, typ) {
			return errors.Errorf("cannot declare %s: symbol table full", id)
		}
	case "assign":
		v, perr := strconv.ParseFloat(st.args[1], 64)
		if perr != nil {
			return errors.Errorf("bad number %q", st.args[1])
		}
		if !t.Assign(st.args[0], v) {
			return errors.Errorf("undeclared identifier %s", st.args[0])
		}
	case "value":
		_, err = fmt.Fprintf(w, "%s = %g\n", st.args[0], t.Value(st.args[0]))
	case "search":
		if i, found := t.Search(st.args[0]); found {
			_, err = fmt.Fprintf(w, "%s found at %d\n", st.args[0], i)
		} else {
			_, err = fmt.Fprintf(w, "%s not found\n", st.args[0])
		}
	case "match":
		typ, perr := symtab.ParseType(st.args[1])
		if perr != nil {
			return perr
		}
		_, err = fmt.Fprintf(w, "%t\n", t.Match(st.args[0], typ))
	case "dump":
		err = t.Fprint(w)
	}
	return err
}
