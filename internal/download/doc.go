package download

// Package download orchestrates format lookups and transfers: it asks the
// engine for a catalog, normalizes it, builds the format selector for a
// choice and streams the transfer's progress to the caller's session.
