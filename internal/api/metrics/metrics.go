// Package metrics defines and registers all custom Prometheus metrics for the
// realty API. It is the single source of truth for metric names, labels, and
// help strings. Metrics are registered with the default registry via promauto
// at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "realty"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure" or "rate_limited"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts bearer tokens the authentication gate refused to
// honor. The request itself still proceeds anonymously; this counter is how
// those silent rejections stay visible.
// Label:
//   - reason: "expired", "malformed", "bad_signature", "bad_subject" or "unknown_user"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of bearer tokens rejected by the authentication gate, labelled by reason.",
	},
	[]string{"reason"},
)

// RegistrationsTotal counts new accounts by the role they were granted.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, labelled by granted role.",
	},
	[]string{"role"},
)

// ── Listing metrics ───────────────────────────────────────────────────────────

// PropertiesCreatedTotal counts listings created, labelled by property type.
var PropertiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_created_total",
		Help:      "Total number of property listings created, labelled by type.",
	},
	[]string{"type"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingTransitionsTotal counts applied booking status transitions.
// Label:
//   - to: the resulting status (e.g. "CONFIRMED")
var BookingTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_transitions_total",
		Help:      "Total number of booking status transitions applied, labelled by resulting status.",
	},
	[]string{"to"},
)

// PaymentsConfirmedTotal counts manual payment confirmations.
var PaymentsConfirmedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_confirmed_total",
		Help:      "Total number of booking payments confirmed.",
	},
)
