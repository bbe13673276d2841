// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package symtab

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sizeDesc = prometheus.NewDesc(
		prometheus.BuildFQName("symtab", "table", "size"),
		"Number of occupied slots in the symbol table.",
		[]string{"table"}, nil)
	capacityDesc = prometheus.NewDesc(
		prometheus.BuildFQName("symtab", "table", "capacity"),
		"Number of slots in the symbol table.",
		[]string{"table"}, nil)
	loadDesc = prometheus.NewDesc(
		prometheus.BuildFQName("symtab", "table", "load_ratio"),
		"Fraction of symbol table slots that are occupied.",
		[]string{"table"}, nil)
)

// Collector exports the occupancy of a Table to Prometheus.  Collection reads
// the table without locking, so it must not run concurrently with inserts.
type Collector struct {
	t *Table
}

// NewCollector returns a Collector for t.
func NewCollector(t *Table) *Collector {
	return &Collector{t}
}

// Describe implements the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(c, ch)
}

// Collect implements the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.t.terminated {
		return
	}
	size, capacity := float64(c.t.Len()), float64(c.t.Cap())
	ch <- prometheus.MustNewConstMetric(sizeDesc, prometheus.GaugeValue, size, c.t.name)
	ch <- prometheus.MustNewConstMetric(capacityDesc, prometheus.GaugeValue, capacity, c.t.name)
	ch <- prometheus.MustNewConstMetric(loadDesc, prometheus.GaugeValue, size/capacity, c.t.name)
}
