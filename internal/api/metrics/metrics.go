// Package metrics defines and registers all custom Prometheus metrics for the
// lost-and-found API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry on import via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lostfound"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful account registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// GateRedirectsTotal counts requests turned away by the access gate.
// Label:
//   - reason: "no_token", "invalid_token", or "not_admin"
var GateRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_redirects_total",
		Help:      "Total number of gated requests redirected to login.",
	},
	[]string{"reason"},
)

// RateLimitedTotal counts requests rejected by the auth rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
)

// ── Post metrics ──────────────────────────────────────────────────────────────

// PostsCreatedTotal counts newly created posts.
// Label:
//   - category: "lost" or "found"
var PostsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created, by category.",
	},
	[]string{"category"},
)

// PostViewsTotal counts post detail reads (each one increments the stored
// view counter).
var PostViewsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_views_total",
		Help:      "Total number of post detail views served.",
	},
)

// ── Upload metrics ────────────────────────────────────────────────────────────

// ImageUploadsTotal counts image uploads.
// Label:
//   - kind: "post" or "avatar"
var ImageUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_uploads_total",
		Help:      "Total number of image uploads, by kind.",
	},
	[]string{"kind"},
)
