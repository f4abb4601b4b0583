package server

import "time"

const (
	readTimeout = 5 * time.Second
	idleTimeout = 60 * time.Second
	// writeSlack is added on top of the upstream timeout so a slow KBO
	// response can still be written back before the server cuts the connection.
	writeSlack = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

func writeTimeoutFor(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		upstream = 10 * time.Second
	}
	return upstream + writeSlack
}
