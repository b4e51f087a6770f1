// Package metrics defines and registers all custom Prometheus metrics
// for the FoodExpress API. It is the single source of truth for metric
// names, labels, and help strings; HTTP-level metrics come from the
// echoprometheus middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "foodexpress"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "not_found", "bad_password", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// AccountsCreatedTotal counts successful public signups.
var AccountsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created through public signup.",
	},
)

// TokensRejectedTotal counts tokens refused at the auth middleware.
// Label:
//   - reason: "expired", "signature", or "malformed"
var TokensRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_rejected_total",
		Help:      "Total number of bearer tokens rejected, labelled by reason.",
	},
	[]string{"reason"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// RestaurantCacheTotal counts cache lookups for public restaurant reads.
// Label:
//   - result: "hit" or "miss"
var RestaurantCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restaurant_cache_total",
		Help:      "Total number of restaurant cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// MenusCascadeDeletedTotal counts menus removed by restaurant deletes.
var MenusCascadeDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menus_cascade_deleted_total",
		Help:      "Total number of menus removed by restaurant cascade deletes.",
	},
)
