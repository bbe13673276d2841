// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

/*
Command symtab runs a declaration script against a fixed capacity symbol
table and prints the results.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/symtab/symtab/internal/symtab"
	"github.com/symtab/symtab/internal/symtab/script"
)

var (
	capacity      = flag.Int("capacity", 20, "Number of slots in the symbol table.")
	scriptPath    = flag.String("script", "", "Name of the script to run.  Reads standard input if empty.")
	tableName     = flag.String("name", "symtab", "Name of the table, used in the dump and metric labels.")
	codeOnlyMatch = flag.Bool("code_only_match", false, "Treat identifiers with equal hash codes as the same symbol.")
	dumpTable     = flag.Bool("dump_table", false, "Print every slot of the table after the script has run.")
	dumpMetrics   = flag.Bool("dump_metrics", false, "Print table metrics in the Prometheus text format after the script has run.")
	version       = flag.Bool("version", false, "Print version information.")
)

// Version is supplied by the linker.
var Version = "devel"

func versionString() string {
	return fmt.Sprintf("symtab version %s go version %s go arch %s go os %s",
		Version, runtime.Version(), runtime.GOARCH, runtime.GOOS)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", versionString())
		fmt.Fprintf(os.Stderr, "\nUsage:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Println(versionString())
		os.Exit(0)
	}
	glog.Info(versionString())
	glog.Infof("Commandline: %q", os.Args)
	if len(flag.Args()) > 0 {
		glog.Exitf("Too many extra arguments specified: %q", flag.Args())
	}

	var in io.Reader = os.Stdin
	name := "<stdin>"
	var f *os.File
	if *scriptPath != "" {
		var err error
		f, err = os.Open(*scriptPath)
		if err != nil {
			glog.Exit(err)
		}
		in, name = f, *scriptPath
	}

	opts := tableOptions(*tableName, *codeOnlyMatch)
	runErr, err := run(name, in, os.Stdout, *capacity, opts, *dumpTable, *dumpMetrics)
	if f != nil {
		if cerr := f.Close(); cerr != nil {
			glog.Warningf("closing %s: %s", name, cerr)
		}
	}
	if err != nil {
		glog.Exit(err)
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

func tableOptions(name string, codeOnly bool) []symtab.Option {
	opts := []symtab.Option{symtab.Name(name)}
	if codeOnly {
		opts = append(opts, symtab.CodeOnlyMatch)
	}
	return opts
}

// run executes the script read from in against a new table, writing results
// to out.  Script errors are returned in runErr; err reports a failure to set
// up the table or write the dumps.
func run(name string, in io.Reader, out io.Writer, capacity int, opts []symtab.Option, dumpTable, dumpMetrics bool) (runErr, err error) {
	err = symtab.With(capacity, func(t *symtab.Table) error {
		runErr = script.Run(name, in, out, t)
		if dumpTable {
			if err := t.Fprint(out); err != nil {
				return err
			}
		}
		if dumpMetrics {
			return writeMetrics(out, t)
		}
		return nil
	}, opts...)
	return runErr, err
}

// newRegistry collects the occupancy of t and the process-wide expvar
// counters kept by the symtab package.
func newRegistry(t *symtab.Table) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(symtab.NewCollector(t)); err != nil {
		return nil, errors.Wrap(err, "registering table collector")
	}
	expvars := prometheus.NewExpvarCollector(map[string]*prometheus.Desc{
		"symtab_inserts_total": prometheus.NewDesc(
			"symtab_inserts_total", "Identifiers inserted into symbol tables.", nil, nil),
		"symtab_insert_full_total": prometheus.NewDesc(
			"symtab_insert_full_total", "Inserts refused because the symbol table was full.", nil, nil),
		"symtab_probe_collisions_total": prometheus.NewDesc(
			"symtab_probe_collisions_total", "Occupied slots stepped over by linear probing.", nil, nil),
		"symtab_lookups_total": prometheus.NewDesc(
			"symtab_lookups_total", "Symbol table searches by result.", []string{"result"}, nil),
	})
	if err := reg.Register(expvars); err != nil {
		return nil, errors.Wrap(err, "registering expvar collector")
	}
	return reg, nil
}

func writeMetrics(w io.Writer, t *symtab.Table) error {
	reg, err := newRegistry(t)
	if err != nil {
		return err
	}
	mfs, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
