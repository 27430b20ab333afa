// Package metrics defines the custom Prometheus metrics for the partner
// tracker API. It is the single source of truth for metric names, labels,
// and help strings; the promauto definitions register themselves with the
// default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "partnercrm"

// ClientsWrittenTotal counts client write operations.
// Labels:
//   - action: "created", "updated", or "deleted"
//   - source: "form" for single saves, "import" for bulk CSV imports
var ClientsWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_written_total",
		Help:      "Total number of client write operations, by action and source.",
	},
	[]string{"action", "source"},
)

// MemosWrittenTotal counts memo write operations.
// Label:
//   - action: "added", "updated", or "deleted"
var MemosWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "memos_written_total",
		Help:      "Total number of memo write operations, by action.",
	},
	[]string{"action"},
)

// ImportRowsTotal counts CSV import rows by outcome.
// Label:
//   - result: "imported" (row became a client) or "skipped" (row dropped)
var ImportRowsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_rows_total",
		Help:      "Total number of CSV import rows, by result (imported/skipped).",
	},
	[]string{"result"},
)

// HistoryEntriesTotal counts booking history entries appended.
var HistoryEntriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "history_entries_total",
		Help:      "Total number of booking history entries recorded.",
	},
)
