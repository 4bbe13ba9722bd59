package progress

import (
	"fmt"
	"math"

	"github.com/ytget/ytfetch/internal/model"
)

// Byte scales used for display
const (
	MiB = 1024 * 1024
	GiB = 1024 * MiB

	// sizes from this many bytes on are shown in GiB
	gibThreshold = 1000 * MiB
)

// NotAvailable is shown for unknown speed or size
const NotAvailable = "N/A"

// DownloadingMessage is the wire form of an in-flight event
type DownloadingMessage struct {
	Status    string  `json:"status"`
	Progress  float64 `json:"progress"`
	Speed     string  `json:"speed"`
	TotalSize string  `json:"total_size"`
	ETA       *int    `json:"eta"`
}

// FinishedMessage is the wire form of a successful terminal event
type FinishedMessage struct {
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	FileName string `json:"file_name"`
}

// ErrorMessage is the wire form of a failed terminal event
type ErrorMessage struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ToMessage converts an event to the JSON shape sent to live clients
func ToMessage(ev model.ProgressEvent) any {
	switch ev.Kind {
	case model.EventFinished:
		return FinishedMessage{
			Status:   string(model.EventFinished),
			Progress: 100,
			FileName: ev.FileName,
		}
	case model.EventError:
		return ErrorMessage{
			Status:  string(model.EventError),
			Message: ev.Message,
		}
	default:
		return DownloadingMessage{
			Status:    string(model.EventDownloading),
			Progress:  Percent(ev.Fraction),
			Speed:     FormatSpeed(ev.Speed),
			TotalSize: FormatTotalSize(ev.BytesTotal),
			ETA:       ev.ETA,
		}
	}
}

// Percent converts a fraction to a percentage with one decimal
func Percent(fraction float64) float64 {
	return math.Round(fraction*1000) / 10
}

// FormatSpeed renders bytes per second as "3.2 MiB/s"
func FormatSpeed(speed *float64) string {
	if speed == nil || *speed <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f MiB/s", *speed/MiB)
}

// FormatTotalSize renders a byte count as "1.5 GiB" or "512.0 MiB"
func FormatTotalSize(total int64) string {
	switch {
	case total <= 0:
		return NotAvailable
	case total >= gibThreshold:
		return fmt.Sprintf("%.1f GiB", float64(total)/GiB)
	default:
		return fmt.Sprintf("%.1f MiB", float64(total)/MiB)
	}
}
