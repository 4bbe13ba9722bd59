package model

// EventKind tags a ProgressEvent
type EventKind string

const (
	EventDownloading EventKind = "downloading"
	EventFinished    EventKind = "finished"
	EventError       EventKind = "error"
)

// Raw status values reported by the engine hook
const (
	RawStatusDownloading = "downloading"
	RawStatusFinished    = "finished"
	RawStatusError       = "error"
)

// ProgressEvent is a single update for one transfer.
// Only the fields relevant to Kind are populated.
type ProgressEvent struct {
	Kind       EventKind
	Fraction   float64  // 0.0 to 1.0
	BytesTotal int64    // 0 if unknown
	BytesDone  int64    // 0 if unknown
	Speed      *float64 // bytes per second
	ETA        *int     // seconds
	FileName   string
	Message    string
}

// Downloading builds an in-flight event
func Downloading(fraction float64, done, total int64, speed *float64, eta *int) ProgressEvent {
	return ProgressEvent{
		Kind:       EventDownloading,
		Fraction:   fraction,
		BytesDone:  done,
		BytesTotal: total,
		Speed:      speed,
		ETA:        eta,
	}
}

// Finished builds the terminal success event
func Finished(fileName string) ProgressEvent {
	return ProgressEvent{Kind: EventFinished, Fraction: 1, FileName: fileName}
}

// Failed builds the terminal error event
func Failed(message string) ProgressEvent {
	return ProgressEvent{Kind: EventError, Message: message}
}

// IsTerminal reports whether no further events follow this one
func (e ProgressEvent) IsTerminal() bool {
	return e.Kind == EventFinished || e.Kind == EventError
}

// RawProgress is the engine-neutral payload passed to a progress hook
type RawProgress struct {
	Status             string
	DownloadedBytes    int64
	TotalBytes         int64
	TotalBytesEstimate int64
	Speed              *float64 // bytes per second
	ETA                *int     // seconds
	Filename           string
	Title              string
}

// Total returns the exact total if known, else the estimate
func (r RawProgress) Total() int64 {
	if r.TotalBytes > 0 {
		return r.TotalBytes
	}
	return r.TotalBytesEstimate
}
