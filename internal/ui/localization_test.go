package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/ytfetch/internal/model"
)

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts[DefaultLanguage]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !assert.Truef(t, ok, "no texts for %s", code) {
			continue
		}
		for key := range english {
			assert.NotEmptyf(t, texts[key], "language %s misses %s", code, key)
		}
	}
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("system")
	assert.Equal(t, DefaultLanguage, l.GetCurrentLanguage())

	l.SetLanguage("xx")
	assert.Equal(t, DefaultLanguage, l.GetCurrentLanguage(), "unknown language is ignored")

	l.SetLanguage("ar")
	assert.Equal(t, "ar", l.GetCurrentLanguage())
	assert.True(t, l.IsRightToLeft())
	assert.Equal(t, "no_such_key", l.GetText("no_such_key"))
}

func TestLocalization_CategoryText(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "Video + Audio", l.CategoryText(model.CategoryCombined))
	assert.Equal(t, "Audio only", l.CategoryText(model.CategoryAudioOnly))

	l.SetLanguage("ar")
	assert.Equal(t, "فيديو فقط", l.CategoryText(model.CategoryVideoOnly))
	assert.Equal(t, "داكن", l.AppearanceText("dark"))
}

func TestLocalization_Textf(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "Downloading: 42.5%", l.Textf(KeyDownloading, 42.5))
	assert.Equal(t, "Downloaded successfully to: /tmp/a.mp4", l.Textf(KeySavedTo, "/tmp/a.mp4"))
}
