package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ytfetch/internal/model"
)

func sampleQualities() model.QualityMap {
	qm := model.NewQualityMap()
	qm.Add(model.CategoryCombined, 360, "mp4")
	qm.Add(model.CategoryCombined, 1080, "webm")
	qm.Add(model.CategoryCombined, 720, "mp4")
	qm.Add(model.CategoryAudioOnly, 128, "m4a")
	qm.Add(model.CategoryAudioOnly, 160, "webm")
	return qm
}

func TestFormatSelector_DescendingLabels(t *testing.T) {
	s := NewFormatSelector(sampleQualities())

	require.False(t, s.Empty())
	assert.Equal(t, []model.Category{model.CategoryCombined, model.CategoryAudioOnly}, s.Categories())
	assert.Equal(t, []string{"1080p", "720p", "360p"}, s.QualityLabels(model.CategoryCombined))
	assert.Equal(t, []string{"160k", "128k"}, s.QualityLabels(model.CategoryAudioOnly))
	assert.Nil(t, s.QualityLabels(model.CategoryVideoOnly))
	assert.Equal(t, []string{"Video + Audio", "Audio only"}, s.CategoryLabels(NewLocalization()))
}

func TestFormatSelector_IndexAndCategoryAt(t *testing.T) {
	s := NewFormatSelector(sampleQualities())

	assert.Equal(t, 1, s.IndexOf(model.CategoryAudioOnly))
	assert.Equal(t, 0, s.IndexOf(model.CategoryVideoOnly), "missing category falls back to the first")

	cat, ok := s.CategoryAt(1)
	assert.True(t, ok)
	assert.Equal(t, model.CategoryAudioOnly, cat)

	_, ok = s.CategoryAt(2)
	assert.False(t, ok)
	_, ok = s.CategoryAt(-1)
	assert.False(t, ok)
}

func TestFormatSelector_Choice(t *testing.T) {
	s := NewFormatSelector(sampleQualities())

	choice, err := s.Choice(model.CategoryCombined, "720p")
	require.NoError(t, err)
	assert.Equal(t, model.SelectionChoice{Category: model.CategoryCombined, Quality: 720}, choice)

	choice, err = s.Choice(model.CategoryAudioOnly, "128k")
	require.NoError(t, err)
	assert.Equal(t, 128, choice.Quality)

	_, err = s.Choice(model.CategoryVideoOnly, "720p")
	var invalid *model.InvalidSelectionError
	assert.ErrorAs(t, err, &invalid)
}

func TestFormatSelector_Empty(t *testing.T) {
	var nilSelector *FormatSelector
	assert.True(t, nilSelector.Empty())
	assert.Nil(t, nilSelector.QualityMap())
	assert.Nil(t, nilSelector.Categories())

	s := NewFormatSelector(model.NewQualityMap())
	assert.True(t, s.Empty())
	_, err := s.Choice(model.CategoryCombined, "720p")
	assert.Error(t, err)
}
