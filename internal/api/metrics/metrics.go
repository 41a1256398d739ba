// Package metrics defines and registers all custom Prometheus metrics for the
// ScholarFind API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "scholarfind"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered accounts.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RateLimitHitsTotal counts requests rejected by the auth rate limiter.
var RateLimitHitsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_hits_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
)

// ── Scholarship metrics ───────────────────────────────────────────────────────

// ScholarshipsCreatedTotal counts new listings.
// Label:
//   - category: the scholarship category as submitted (e.g. "Engineering")
var ScholarshipsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scholarships_created_total",
		Help:      "Total number of scholarships created, by category.",
	},
	[]string{"category"},
)

// ── Bookmark metrics ──────────────────────────────────────────────────────────

// BookmarksTotal counts bookmark mutations.
// Label:
//   - action: "add" or "remove"
var BookmarksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmarks_total",
		Help:      "Total number of bookmark operations, labelled by action.",
	},
	[]string{"action"},
)
