package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ytfetch/internal/model"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestNormalize_EmptyInput(t *testing.T) {
	qm := Normalize(nil)
	assert.True(t, qm.Empty())
	assert.Empty(t, NewListing(qm, OrderAscending))
}

func TestNormalize_SkipsMissingExtension(t *testing.T) {
	qm := Normalize([]model.StreamDescriptor{
		{VideoCodec: "avc1", AudioCodec: model.CodecNone, Height: intPtr(1080)},
		{VideoCodec: model.CodecNone, AudioCodec: "opus", AverageBitrate: floatPtr(160)},
	})
	assert.True(t, qm.Empty())
}

func TestNormalize_VideoOnlyCountsTowardCombined(t *testing.T) {
	qm := Normalize([]model.StreamDescriptor{
		{Extension: "mp4", VideoCodec: "avc1", AudioCodec: model.CodecNone, Height: intPtr(1080)},
	})

	assert.True(t, qm.Has(model.CategoryCombined, 1080))
	assert.True(t, qm.Has(model.CategoryVideoOnly, 1080))
	assert.False(t, qm.HasCategory(model.CategoryAudioOnly))
}

func TestNormalize_MuxedStreamIsNotVideoOnly(t *testing.T) {
	qm := Normalize([]model.StreamDescriptor{
		{Extension: "mp4", VideoCodec: "avc1", AudioCodec: "mp4a.40.2", Height: intPtr(360)},
	})

	assert.True(t, qm.Has(model.CategoryCombined, 360))
	assert.False(t, qm.HasCategory(model.CategoryVideoOnly))
}

func TestNormalize_AudioBitrateTruncates(t *testing.T) {
	qm := Normalize([]model.StreamDescriptor{
		{Extension: "m4a", VideoCodec: model.CodecNone, AudioCodec: "mp4a", AverageBitrate: floatPtr(128.4)},
		{Extension: "webm", VideoCodec: model.CodecNone, AudioCodec: "opus", AverageBitrate: floatPtr(128.9)},
		{Extension: "webm", VideoCodec: model.CodecNone, AudioCodec: "opus"},
	})

	require.True(t, qm.Has(model.CategoryAudioOnly, 128))
	assert.Equal(t, []string{"m4a", "webm"}, qm.Extensions(model.CategoryAudioOnly, 128).List())
	assert.Len(t, qm[model.CategoryAudioOnly], 1)
	assert.False(t, qm.HasCategory(model.CategoryCombined))
}

func TestNormalize_ExtensionsDeduplicatedPerKey(t *testing.T) {
	qm := Normalize([]model.StreamDescriptor{
		{Extension: "mp4", VideoCodec: "avc1", AudioCodec: model.CodecNone, Height: intPtr(720)},
		{Extension: "mp4", VideoCodec: "avc1", AudioCodec: model.CodecNone, Height: intPtr(720)},
		{Extension: "webm", VideoCodec: "vp9", AudioCodec: model.CodecNone, Height: intPtr(720)},
	})

	assert.Equal(t, []string{"mp4", "webm"}, qm.Extensions(model.CategoryVideoOnly, 720).List())
	assert.Equal(t, []string{"mp4", "webm"}, qm.Extensions(model.CategoryCombined, 720).List())
}

func TestNormalize_EveryEntryHasExtensions(t *testing.T) {
	descriptors := []model.StreamDescriptor{
		{Extension: "mp4", VideoCodec: "avc1", AudioCodec: "mp4a", Height: intPtr(360)},
		{Extension: "webm", VideoCodec: "vp9", AudioCodec: model.CodecNone, Resolution: "2560x1440"},
		{Extension: "mp4", VideoCodec: "avc1", AudioCodec: model.CodecNone, FormatNote: "480p"},
		{Extension: "mhtml", VideoCodec: model.CodecNone, AudioCodec: model.CodecNone, FormatNote: "storyboard"},
		{Extension: "m4a", VideoCodec: model.CodecNone, AudioCodec: "mp4a", AverageBitrate: floatPtr(48.2)},
		{VideoCodec: "avc1", Height: intPtr(2160)},
	}

	qm := Normalize(descriptors)
	for cat, byQuality := range qm {
		for q, exts := range byQuality {
			assert.NotEmpty(t, exts, "%s/%d has no extensions", cat, q)
		}
	}
	assert.False(t, qm.Has(model.CategoryCombined, 2160))
}

func TestDisplayQuality(t *testing.T) {
	tests := []struct {
		name     string
		d        model.StreamDescriptor
		expected int
		ok       bool
	}{
		{"height wins", model.StreamDescriptor{Height: intPtr(720), Resolution: "1920x1080"}, 720, true},
		{"resolution", model.StreamDescriptor{Resolution: "1920x1080"}, 1080, true},
		{"format note", model.StreamDescriptor{FormatNote: "480p"}, 480, true},
		{"format note keeps every digit", model.StreamDescriptor{FormatNote: "720p60"}, 72060, true},
		{"resolution without separator", model.StreamDescriptor{Resolution: "audio only", FormatNote: "144p"}, 144, true},
		{"unparsable resolution stops", model.StreamDescriptor{Resolution: "1920xabc", FormatNote: "480p"}, 0, false},
		{"resolution takes second part", model.StreamDescriptor{Resolution: "1920x1080x2"}, 1080, true},
		{"zero height falls through", model.StreamDescriptor{Height: intPtr(0), Resolution: "640x360"}, 360, true},
		{"note without p", model.StreamDescriptor{FormatNote: "DASH 1080"}, 0, false},
		{"zero height", model.StreamDescriptor{Height: intPtr(0)}, 0, false},
		{"nothing", model.StreamDescriptor{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := DisplayQuality(tt.d)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, q)
		})
	}
}

func TestNormalize_FormatNoteAndBadResolution(t *testing.T) {
	qm := Normalize([]model.StreamDescriptor{
		{Extension: "mp4", VideoCodec: "avc1", AudioCodec: model.CodecNone, FormatNote: "720p60"},
		{Extension: "webm", VideoCodec: "vp9", AudioCodec: model.CodecNone, Resolution: "1920xabc", FormatNote: "480p"},
	})

	assert.Equal(t, []int{72060}, qm.Qualities(model.CategoryCombined))
	assert.Equal(t, []int{72060}, qm.Qualities(model.CategoryVideoOnly))
}
