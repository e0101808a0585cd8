// Package lifecycle holds timeouts shared by start and stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds a single start or stop hook.
	DefaultTimeout = 10 * time.Second

	// RestoreTimeout bounds the initial state restore when the service starts.
	RestoreTimeout = 15 * time.Second
)
