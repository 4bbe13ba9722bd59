package catalog

import (
	"strconv"
	"strings"

	"github.com/ytget/ytfetch/internal/model"
)

// Separators used when reading quality out of descriptor strings
const (
	ResolutionSeparator = "x"
	FormatNoteMarker    = "p"
)

// Normalize groups descriptors by category and quality key.
// It never fails; an empty input yields an empty map.
func Normalize(descriptors []model.StreamDescriptor) model.QualityMap {
	qm := model.NewQualityMap()

	for _, d := range descriptors {
		if d.Extension == "" {
			continue
		}

		if quality, ok := DisplayQuality(d); ok && d.HasVideo() {
			qm.Add(model.CategoryCombined, quality, d.Extension)
			if !d.HasAudio() {
				qm.Add(model.CategoryVideoOnly, quality, d.Extension)
			}
		}

		if !d.HasVideo() && d.HasAudio() && d.AverageBitrate != nil && *d.AverageBitrate > 0 {
			if kbps := int(*d.AverageBitrate); kbps > 0 {
				qm.Add(model.CategoryAudioOnly, kbps, d.Extension)
			}
		}
	}

	return qm
}

// DisplayQuality resolves the vertical resolution of a descriptor from its
// height, its resolution string, or its format note. Only the first source
// present is consulted: a resolution string such as "1920xabc" yields no
// quality even when a format note is set.
func DisplayQuality(d model.StreamDescriptor) (int, bool) {
	switch {
	case d.Height != nil && *d.Height != 0:
		return positive(*d.Height)
	case strings.Contains(d.Resolution, ResolutionSeparator):
		parts := strings.Split(d.Resolution, ResolutionSeparator)
		h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, false
		}
		return positive(h)
	case strings.Contains(d.FormatNote, FormatNoteMarker):
		// every digit counts, so "720p60" reads as 72060
		h, err := strconv.Atoi(digitsOnly(d.FormatNote))
		if err != nil {
			return 0, false
		}
		return positive(h)
	}
	return 0, false
}

func positive(n int) (int, bool) {
	return n, n > 0
}

// digitsOnly drops every non-digit character of s
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
