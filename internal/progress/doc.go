package progress

// Package progress relays engine progress hooks to a live session. Hooks run
// on the engine goroutine and only enqueue; a per-transfer drain goroutine
// delivers events in non-decreasing progress order with the terminal event last.
