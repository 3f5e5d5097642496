package main

import (
	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/celexpr/celc/compiler"
)

// newCLIMetrics builds the process-wide compiler.Metrics and registers it
// against the default Prometheus registry. Registration failure (a name
// collision, which cannot happen here since celc owns the whole process)
// is logged rather than fatal.
func newCLIMetrics() *compiler.Metrics {
	m := compiler.NewMetrics()
	if err := m.Register(prometheus.DefaultRegisterer); err != nil {
		glog.Warningf("metrics registration failed: %v", err)
	}
	return m
}
