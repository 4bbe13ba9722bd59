package model

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes reported to API clients
const (
	CodeInfoFetch        = "info_fetch_failed"
	CodeInvalidSelection = "invalid_selection"
	CodeNoActiveSession  = "no_active_session"
	CodeTransfer         = "transfer_failed"
	CodeDuplicateSession = "duplicate_session"
)

// MuxerHint is appended to transfer errors of combined downloads
const MuxerHint = "make sure ffmpeg is installed if downloading video and audio together"

// InfoFetchError means the engine could not resolve or enumerate formats
type InfoFetchError struct {
	URL string
	Err error
}

func (e *InfoFetchError) Error() string {
	return fmt.Sprintf("failed to fetch formats for %s: %v", e.URL, e.Err)
}

func (e *InfoFetchError) Unwrap() error { return e.Err }

// Code returns the API error code
func (e *InfoFetchError) Code() string { return CodeInfoFetch }

// HTTPStatus returns the status used by the web API
func (e *InfoFetchError) HTTPStatus() int { return http.StatusBadRequest }

// InvalidSelectionError means the chosen category or quality is not available
type InvalidSelectionError struct {
	Category string
	Quality  int
	Reason   string
}

func (e *InvalidSelectionError) Error() string {
	if e.Quality != 0 {
		return fmt.Sprintf("invalid selection %s/%d: %s", e.Category, e.Quality, e.Reason)
	}
	if e.Category == "" {
		return "invalid selection: " + e.Reason
	}
	return fmt.Sprintf("invalid selection %q: %s", e.Category, e.Reason)
}

// Code returns the API error code
func (e *InvalidSelectionError) Code() string { return CodeInvalidSelection }

// HTTPStatus returns the status used by the web API
func (e *InvalidSelectionError) HTTPStatus() int { return http.StatusBadRequest }

// NoActiveSessionError means there is no live channel to report progress to
type NoActiveSessionError struct {
	SessionID string
}

func (e *NoActiveSessionError) Error() string {
	return fmt.Sprintf("no active progress channel for session %q, connect first", e.SessionID)
}

// Code returns the API error code
func (e *NoActiveSessionError) Code() string { return CodeNoActiveSession }

// HTTPStatus returns the status used by the web API
func (e *NoActiveSessionError) HTTPStatus() int { return http.StatusBadRequest }

// TransferError means the engine failed during the download
type TransferError struct {
	URL  string
	Err  error
	Hint string
}

func (e *TransferError) Error() string {
	msg := fmt.Sprintf("download failed: %v", e.Err)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

func (e *TransferError) Unwrap() error { return e.Err }

// Code returns the API error code
func (e *TransferError) Code() string { return CodeTransfer }

// HTTPStatus returns the status used by the web API
func (e *TransferError) HTTPStatus() int { return http.StatusInternalServerError }

// DuplicateSessionError means a live channel already exists for the id
type DuplicateSessionError struct {
	SessionID string
}

func (e *DuplicateSessionError) Error() string {
	return fmt.Sprintf("session %q already has a live channel", e.SessionID)
}

// Code returns the API error code
func (e *DuplicateSessionError) Code() string { return CodeDuplicateSession }

// HTTPStatus returns the status used by the web API
func (e *DuplicateSessionError) HTTPStatus() int { return http.StatusConflict }

// CodedError is implemented by every error of the taxonomy
type CodedError interface {
	error
	Code() string
	HTTPStatus() int
}

// AsCoded finds the first CodedError in err's chain
func AsCoded(err error) (CodedError, bool) {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded, true
	}
	return nil, false
}
