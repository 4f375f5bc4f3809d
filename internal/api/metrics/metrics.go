// Package metrics defines and registers all custom Prometheus metrics for
// the hamstery API. It is the single source of truth for metric names and
// help strings.
//
// Metrics register with the default Prometheus registry at init time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hamstery"

// UsersRegisteredTotal counts provisioned accounts.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts provisioned.",
	},
)

// HamstersFedTotal counts successful feed operations.
var HamstersFedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hamsters_fed_total",
		Help:      "Total number of hamsters fed.",
	},
)

// HamstersSoldTotal counts hamsters sold and removed from the store.
var HamstersSoldTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hamsters_sold_total",
		Help:      "Total number of hamsters sold.",
	},
)

// HamstersBredTotal counts offspring created by reproduction.
var HamstersBredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hamsters_bred_total",
		Help:      "Total number of hamsters born from reproduction.",
	},
)

// HamstersRetiredTotal counts hamsters that turned inactive during sleep.
var HamstersRetiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hamsters_retired_total",
		Help:      "Total number of hamsters permanently retired by age or hunger.",
	},
)

// GoldSpentTotal accumulates gold deducted by feeding.
var GoldSpentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gold_spent_total",
		Help:      "Total gold spent on feeding.",
	},
)

// GoldEarnedTotal accumulates gold credited by sales.
var GoldEarnedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gold_earned_total",
		Help:      "Total gold earned from selling hamsters.",
	},
)
