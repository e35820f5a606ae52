// Package server runs the daemon's HTTP listener. It serves the Prometheus
// /metrics endpoint and a liveness probe, and shuts down gracefully.
package server
