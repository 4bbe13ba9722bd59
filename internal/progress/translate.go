package progress

import "github.com/ytget/ytfetch/internal/model"

// Translate converts a raw engine payload into a ProgressEvent.
// Only downloading payloads are forwarded: the terminal event is decided
// once the transfer call returns.
func Translate(raw model.RawProgress) (model.ProgressEvent, bool) {
	if raw.Status != model.RawStatusDownloading {
		return model.ProgressEvent{}, false
	}

	total := raw.Total()
	var fraction float64
	if total > 0 {
		fraction = float64(raw.DownloadedBytes) / float64(total)
	}

	return model.Downloading(clampFraction(fraction), raw.DownloadedBytes, total, raw.Speed, raw.ETA), true
}

func clampFraction(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
