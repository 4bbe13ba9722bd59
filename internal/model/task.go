package model

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"
)

// DownloadTask tracks one StartDownload call from acceptance to its terminal event
type DownloadTask struct {
	ID          string
	SessionID   string
	URL         string
	Choice      SelectionChoice
	Expression  SelectionExpression
	Destination string
	Status      TaskStatus
	Progress    float64 // 0.0 to 1.0
	Percent     int     // 0 to 100
	Speed       string  // human readable, e.g. "1.2 MiB/s"
	TotalSize   string  // human readable, e.g. "512.0 MiB"
	ETASec      int     // -1 if unknown
	LastError   string
	OutputPath  string
	Title       string
	StartedAt   time.Time
	FinishedAt  time.Time
}

// ApplyProgress copies an in-flight event into the task counters
func (dt *DownloadTask) ApplyProgress(ev ProgressEvent) {
	if ev.Kind != EventDownloading {
		return
	}
	dt.Status = TaskStatusDownloading
	dt.Progress = ev.Fraction
	dt.Percent = int(math.Floor(ev.Fraction * 100))
	if ev.ETA != nil {
		dt.ETASec = *ev.ETA
	} else {
		dt.ETASec = -1
	}
}

// GetETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (dt *DownloadTask) GetETAString() string {
	if dt.ETASec <= 0 {
		return "—"
	}

	hours := dt.ETASec / 3600
	minutes := (dt.ETASec % 3600) / 60
	seconds := dt.ETASec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayTitle returns title, file name, or URL in order of preference
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Title != "" && !strings.HasPrefix(dt.Title, "http") {
		return dt.Title
	}

	if dt.OutputPath != "" {
		name := filepath.Base(strings.ReplaceAll(dt.OutputPath, "\\", "/"))
		if idx := strings.LastIndex(name, "."); idx > 0 {
			name = name[:idx]
		}
		return name
	}

	return dt.URL
}

// Snapshot returns a copy safe to hand to another goroutine
func (dt *DownloadTask) Snapshot() *DownloadTask {
	cp := *dt
	return &cp
}
