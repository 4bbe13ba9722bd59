package ui

import (
	"fmt"
	"strings"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/ytget/ytfetch/internal/model"
	"github.com/ytget/ytfetch/internal/progress"
)

// progressSender is the session transport of the desktop window. Events are
// handed to onEvent on the Fyne goroutine.
type progressSender struct {
	mu      sync.Mutex
	closed  bool
	onEvent func(model.ProgressEvent)
	do      func(func())
}

func newProgressSender(onEvent func(model.ProgressEvent)) *progressSender {
	return &progressSender{onEvent: onEvent, do: fyne.Do}
}

// Send implements session.Sender
func (s *progressSender) Send(ev model.ProgressEvent) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return fmt.Errorf("progress sender closed")
	}
	s.do(func() { s.onEvent(ev) })
	return nil
}

// Close implements session.Sender
func (s *progressSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Sizes and speeds below this would read "0.0 MiB" and are left out
const minShownBytes = progress.MiB / 20

// ProgressText renders ev for the status label
func ProgressText(loc *Localization, ev model.ProgressEvent) string {
	switch ev.Kind {
	case model.EventFinished:
		if ev.FileName == "" {
			return loc.GetText(KeyDownloadCompleted)
		}
		return loc.GetText(KeyDownloadCompleted) + ": " + ev.FileName
	case model.EventError:
		if ev.Message == "" {
			return loc.GetText(KeyDownloadFailed)
		}
		return loc.GetText(KeyDownloadFailed) + ": " + ev.Message
	}

	parts := []string{loc.Textf(KeyDownloading, progress.Percent(ev.Fraction))}
	if ev.Speed != nil && *ev.Speed >= minShownBytes {
		parts = append(parts, loc.Textf(KeySpeed, progress.FormatSpeed(ev.Speed)))
	}
	if ev.BytesTotal >= minShownBytes {
		parts = append(parts, loc.Textf(KeySize, progress.FormatTotalSize(ev.BytesTotal)))
	}
	if ev.ETA != nil && *ev.ETA > 0 {
		parts = append(parts, loc.Textf(KeyETA, formatETA(*ev.ETA)))
	}
	return strings.Join(parts, MiddleDotSeparator)
}

// formatETA renders seconds as mm:ss or hh:mm:ss
func formatETA(seconds int) string {
	task := model.DownloadTask{ETASec: seconds}
	return task.GetETAString()
}
