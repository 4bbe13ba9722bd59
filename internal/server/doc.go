// Package server exposes the download service over HTTP with gin and streams
// per-client progress over gorilla websockets.
//
// A client first opens /ws/progress/:client_id, then posts to /api/info and
// /api/download with the same client_id. Progress and the terminal event for
// the download arrive on the socket; the HTTP response carries the file or,
// in custom folder mode, where it was saved.
package server
