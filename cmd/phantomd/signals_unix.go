//go:build unix

package main

import (
	"os"
	"syscall"
)

func stopSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}
}

// sessionSignals mark a session boundary such as logout or screen lock.
func sessionSignals() []os.Signal {
	return []os.Signal{syscall.SIGUSR1}
}
