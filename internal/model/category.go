package model

import "strings"

// Category is one of the three user-facing stream groups
type Category int

const (
	// CategoryCombined groups every stream carrying a usable video track.
	// Video-only streams are counted here as well: yt-dlp merges the best
	// audio on top when the selection asks for it.
	CategoryCombined Category = iota + 1

	// CategoryVideoOnly groups streams with video and no audio track
	CategoryVideoOnly

	// CategoryAudioOnly groups streams with audio and no video track
	CategoryAudioOnly
)

// Wire keys used by the web API and stored preferences
const (
	KeyCombined  = "combined"
	KeyVideoOnly = "video_only"
	KeyAudioOnly = "audio_only"
)

// Quality units appended to display labels
const (
	UnitHeight  = "p"
	UnitBitrate = "k"
)

// legacyLabels maps display labels sent by older clients to categories
var legacyLabels = map[string]Category{
	"فيديو + صوت": CategoryCombined,
	"فيديو وصوت":  CategoryCombined,
	"فيديو فقط":   CategoryVideoOnly,
	"صوت فقط":     CategoryAudioOnly,
}

// Categories returns all categories in display order
func Categories() []Category {
	return []Category{CategoryCombined, CategoryVideoOnly, CategoryAudioOnly}
}

// String returns the wire key of the category
func (c Category) String() string {
	switch c {
	case CategoryCombined:
		return KeyCombined
	case CategoryVideoOnly:
		return KeyVideoOnly
	case CategoryAudioOnly:
		return KeyAudioOnly
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the three known categories
func (c Category) Valid() bool {
	return c >= CategoryCombined && c <= CategoryAudioOnly
}

// IsVideo reports whether qualities of c are vertical resolutions
func (c Category) IsVideo() bool {
	return c == CategoryCombined || c == CategoryVideoOnly
}

// QualityUnit returns the suffix used when a quality of c is displayed
func (c Category) QualityUnit() string {
	if c == CategoryAudioOnly {
		return UnitBitrate
	}
	return UnitHeight
}

// ParseCategory converts a wire key or a legacy display label to a Category
func ParseCategory(s string) (Category, error) {
	key := strings.TrimSpace(s)
	switch strings.ToLower(key) {
	case KeyCombined:
		return CategoryCombined, nil
	case KeyVideoOnly:
		return CategoryVideoOnly, nil
	case KeyAudioOnly:
		return CategoryAudioOnly, nil
	}
	if c, ok := legacyLabels[key]; ok {
		return c, nil
	}
	return 0, &InvalidSelectionError{Category: s, Reason: "unknown category"}
}

// MarshalText implements encoding.TextMarshaler so categories can be map keys
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &InvalidSelectionError{Category: c.String(), Reason: "unknown category"}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
