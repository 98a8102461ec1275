// Package metrics exposes Prometheus collectors for the HTTP surface and for
// recommendation outcomes, plus the chi middleware and /metrics handler that
// use them.
package metrics
