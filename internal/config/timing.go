package config

import "time"

// Default timing configurations used throughout the server
const (
	// DefaultSessionTimeout is the inactivity window after which a session
	// is considered expired and refuses further tool calls
	DefaultSessionTimeout = 2 * time.Hour

	// DefaultCleanupInterval is how often the stale-session sweep runs
	DefaultCleanupInterval = 15 * time.Minute

	// DefaultMaxAutoSteps is the hard cap on steps executed by a single
	// auto_execute call
	DefaultMaxAutoSteps = 5
)
