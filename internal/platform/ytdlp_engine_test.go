package platform

import (
	"errors"
	"testing"

	"github.com/lrstanley/go-ytdlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogFixture = `{
  "id": "abc123",
  "title": "Big/Buck Bunny",
  "thumbnail": "https://i.example.com/abc123.jpg",
  "duration": 3725,
  "ext": "mp4",
  "formats": [
    {"format_id": "140", "ext": "m4a", "vcodec": "none", "acodec": "mp4a.40.2", "abr": 129.5, "format_note": "medium", "filesize": 3400000},
    {"format_id": "137", "ext": "mp4", "vcodec": "avc1.640028", "acodec": "none", "height": 1080, "resolution": "1920x1080", "filesize_approx": 81000000},
    {"format_id": "18", "ext": "mp4", "vcodec": "avc1.42001E", "acodec": "mp4a.40.2", "height": 360, "resolution": "640x360"},
    {"format_id": "sb0", "ext": "mhtml", "vcodec": null, "acodec": null, "format_note": "storyboard"}
  ]
}`

func TestParseCatalogJSON(t *testing.T) {
	catalog, err := ParseCatalogJSON([]byte(catalogFixture))
	require.NoError(t, err)

	assert.Equal(t, "abc123", catalog.ID)
	assert.Equal(t, "Big/Buck Bunny", catalog.Title)
	assert.Equal(t, "01:02:05", catalog.DurationString)
	assert.InDelta(t, 3725.0, catalog.Duration, 0.001)
	assert.Equal(t, "Big_Buck Bunny.mp4", catalog.OriginalFilename)
	require.Len(t, catalog.Descriptors, 4)

	audio := catalog.Descriptors[0]
	assert.False(t, audio.HasVideo())
	assert.True(t, audio.HasAudio())
	require.NotNil(t, audio.AverageBitrate)
	assert.InDelta(t, 129.5, *audio.AverageBitrate, 0.001)
	assert.Equal(t, int64(3400000), audio.FileSize)

	video := catalog.Descriptors[1]
	require.NotNil(t, video.Height)
	assert.Equal(t, 1080, *video.Height)
	assert.Equal(t, int64(81000000), video.FileSize)
	assert.False(t, video.HasAudio())

	// null codecs decode as unknown, which does not mean absent
	board := catalog.Descriptors[3]
	assert.Equal(t, "", board.VideoCodec)
	assert.True(t, board.HasVideo())
	assert.Nil(t, board.Height)
}

func TestParseCatalogJSON_Errors(t *testing.T) {
	_, err := ParseCatalogJSON(nil)
	assert.Error(t, err)

	_, err = ParseCatalogJSON([]byte("not json"))
	assert.ErrorContains(t, err, "failed to decode")

	_, err = ParseCatalogJSON([]byte(`{"_type": "playlist", "entries": []}`))
	assert.ErrorContains(t, err, "playlists are not supported")
}

func TestParseCatalogJSON_DurationFallbacks(t *testing.T) {
	catalog, err := ParseCatalogJSON([]byte(`{"id": "x", "title": "", "duration_string": "4:20"}`))
	require.NoError(t, err)
	assert.Equal(t, "4:20", catalog.DurationString)
	assert.Equal(t, DefaultTitle, catalog.OriginalFilename)

	catalog, err = ParseCatalogJSON([]byte(`{"id": "x", "title": "Live"}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultDuration, catalog.DurationString)
	assert.Empty(t, catalog.Descriptors)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{61, "01:01"},
		{3600, "01:00:00"},
		{3725, "01:02:05"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.seconds); got != tt.expected {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.seconds, got, tt.expected)
		}
	}
}

func TestEngineError(t *testing.T) {
	base := errors.New("exit status 1")

	err := engineError(&ytdlp.Result{Stderr: "WARNING: slow\nERROR: [youtube] abc: Video unavailable\n"}, base)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "[youtube] abc: Video unavailable: exit status 1", err.Error())

	assert.Equal(t, base, engineError(nil, base))
	assert.Equal(t, base, engineError(&ytdlp.Result{Stderr: "WARNING: only"}, base))
}

func TestNewYtdlpEngineDefaults(t *testing.T) {
	engine := NewYtdlpEngine("", nil)
	assert.Equal(t, DefaultParseTimeout, engine.timeout)
	assert.Equal(t, DefaultProgressInterval, engine.progressInterval)

	engine.SetTimeout(0)
	assert.Zero(t, engine.timeout)

	assert.Empty(t, engine.Executable())
	engine.SetExecutable("/opt/bin/yt-dlp")
	assert.Equal(t, "/opt/bin/yt-dlp", engine.Executable())
}
