package model

import (
	"encoding/json"
	"slices"

	"github.com/samber/lo"
)

// CodecNone is the codec value yt-dlp reports for a missing track
const CodecNone = "none"

// StreamDescriptor is one entry of the engine's format list
type StreamDescriptor struct {
	FormatID       string
	Extension      string
	VideoCodec     string
	AudioCodec     string
	Height         *int
	Resolution     string // e.g. "1920x1080" or "audio only"
	FormatNote     string // e.g. "720p" or "DASH video"
	AverageBitrate *float64
	FileSize       int64
}

// HasVideo reports whether the descriptor carries a video track.
// An unknown codec counts as present.
func (d StreamDescriptor) HasVideo() bool {
	return d.VideoCodec != CodecNone
}

// HasAudio reports whether the descriptor carries an audio track
func (d StreamDescriptor) HasAudio() bool {
	return d.AudioCodec != CodecNone
}

// ExtSet is a set of file extensions
type ExtSet map[string]struct{}

// NewExtSet builds a set from the given extensions
func NewExtSet(exts ...string) ExtSet {
	s := make(ExtSet, len(exts))
	for _, ext := range exts {
		s[ext] = struct{}{}
	}
	return s
}

// Add inserts ext into the set
func (s ExtSet) Add(ext string) {
	s[ext] = struct{}{}
}

// Contains reports whether ext is in the set
func (s ExtSet) Contains(ext string) bool {
	_, ok := s[ext]
	return ok
}

// List returns the extensions sorted alphabetically
func (s ExtSet) List() []string {
	exts := lo.Keys(s)
	slices.Sort(exts)
	return exts
}

// MarshalJSON encodes the set as a sorted array
func (s ExtSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

// UnmarshalJSON decodes an array of extensions
func (s *ExtSet) UnmarshalJSON(data []byte) error {
	var exts []string
	if err := json.Unmarshal(data, &exts); err != nil {
		return err
	}
	*s = NewExtSet(exts...)
	return nil
}

// QualityMap groups available extensions by category and quality key.
// Quality keys are pixel heights for video categories and kbps for audio.
type QualityMap map[Category]map[int]ExtSet

// NewQualityMap returns an empty map
func NewQualityMap() QualityMap {
	return make(QualityMap)
}

// Add records ext as available for (cat, quality)
func (qm QualityMap) Add(cat Category, quality int, ext string) {
	byQuality, ok := qm[cat]
	if !ok {
		byQuality = make(map[int]ExtSet)
		qm[cat] = byQuality
	}
	exts, ok := byQuality[quality]
	if !ok {
		exts = make(ExtSet)
		byQuality[quality] = exts
	}
	exts.Add(ext)
}

// HasCategory reports whether cat has at least one quality
func (qm QualityMap) HasCategory(cat Category) bool {
	return len(qm[cat]) > 0
}

// Has reports whether quality exists within cat
func (qm QualityMap) Has(cat Category, quality int) bool {
	_, ok := qm[cat][quality]
	return ok
}

// Extensions returns the extensions known for (cat, quality)
func (qm QualityMap) Extensions(cat Category, quality int) ExtSet {
	return qm[cat][quality]
}

// Qualities returns the quality keys of cat in ascending order
func (qm QualityMap) Qualities(cat Category) []int {
	keys := lo.Keys(qm[cat])
	slices.Sort(keys)
	return keys
}

// Empty reports whether no category has any quality
func (qm QualityMap) Empty() bool {
	return !lo.SomeBy(Categories(), qm.HasCategory)
}

// Catalog is the engine's description of a single media URL
type Catalog struct {
	ID               string
	Title            string
	Thumbnail        string
	Duration         float64 // seconds
	DurationString   string
	Extension        string
	OriginalFilename string
	Descriptors      []StreamDescriptor
}

var (
	_ json.Marshaler   = ExtSet(nil)
	_ json.Unmarshaler = (*ExtSet)(nil)
)
