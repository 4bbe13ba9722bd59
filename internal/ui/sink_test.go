package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ytfetch/internal/model"
	"github.com/ytget/ytfetch/internal/progress"
)

func TestProgressText_Downloading(t *testing.T) {
	loc := NewLocalization()
	speed := float64(2 * progress.MiB)
	eta := 75

	text := ProgressText(loc, model.Downloading(0.425, 100, 512*progress.MiB, &speed, &eta))
	assert.Equal(t, "Downloading: 42.5% · Speed: 2.0 MiB/s · Size: 512.0 MiB · Remaining: 01:15", text)

	text = ProgressText(loc, model.Downloading(0.1, 0, 0, nil, nil))
	assert.Equal(t, "Downloading: 10.0%", text)
}

func TestProgressText_HidesValuesRoundingToZero(t *testing.T) {
	loc := NewLocalization()
	slow := float64(1024)

	text := ProgressText(loc, model.Downloading(0.25, 1, 4, &slow, nil))
	assert.Equal(t, "Downloading: 25.0%", text)

	text = ProgressText(loc, model.Downloading(0.25, 1, progress.MiB/10, nil, nil))
	assert.Equal(t, "Downloading: 25.0% · Size: 0.1 MiB", text)
}

func TestProgressText_Terminal(t *testing.T) {
	loc := NewLocalization()

	assert.Equal(t, "Download completed: Clip.mp4", ProgressText(loc, model.Finished("Clip.mp4")))
	assert.Equal(t, "Download completed", ProgressText(loc, model.Finished("")))
	assert.Equal(t, "Download error: boom", ProgressText(loc, model.Failed("boom")))

	loc.SetLanguage("ar")
	assert.Equal(t, "خطأ في التنزيل", ProgressText(loc, model.Failed("")))
}

func TestProgressSender(t *testing.T) {
	var got []model.ProgressEvent
	sender := newProgressSender(func(ev model.ProgressEvent) { got = append(got, ev) })
	sender.do = func(f func()) { f() }

	require.NoError(t, sender.Send(model.Downloading(0.5, 1, 2, nil, nil)))
	require.NoError(t, sender.Send(model.Finished("a.mp4")))
	require.NoError(t, sender.Close())
	assert.Error(t, sender.Send(model.Failed("late")))

	require.Len(t, got, 2)
	assert.Equal(t, model.EventFinished, got[1].Kind)
}

func TestFormatETA(t *testing.T) {
	assert.Equal(t, "00:05", formatETA(5))
	assert.Equal(t, "01:01:01", formatETA(3661))
}
