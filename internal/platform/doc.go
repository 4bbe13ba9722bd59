package platform

// Package platform contains OS/platform integration and external tooling glue:
// the yt-dlp engine, per-transfer workspaces, filesystem helpers and OS open/reveal.
