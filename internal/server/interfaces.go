package server

import "context"

// Server defines the lifecycle contract of the portal process.
type Server interface {
	// Run serves until ctx is cancelled, a termination signal arrives or a
	// component fails, then shuts everything down.
	Run(ctx context.Context) error
}
