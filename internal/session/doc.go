package session

// Package session tracks the live progress channel of each client. A client
// holds at most one channel per id; channels are registered when the client
// connects and removed on disconnect or after the terminal event is delivered.
