package server

import "context"

// Server defines the lifecycle contract of the listeners managed by this
// package.
//
// Implementations are expected to block in [RunServer] until the server
// stops and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx is done.
	Shutdown(ctx context.Context)
}
