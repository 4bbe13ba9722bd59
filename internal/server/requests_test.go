package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ytfetch/internal/model"
)

func TestQualityValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{`720`, 720},
		{`"720"`, 720},
		{`"1080p"`, 1080},
		{`"128k"`, 128},
		{`""`, model.QualityBest},
		{`null`, model.QualityBest},
	}

	for _, tt := range tests {
		var q QualityValue
		require.NoError(t, json.Unmarshal([]byte(tt.input), &q), tt.input)
		assert.Equal(t, tt.expected, int(q), tt.input)
	}
}

func TestQualityValue_Rejects(t *testing.T) {
	for _, input := range []string{`-5`, `true`, `"99999999999999999999p"`} {
		var q QualityValue
		assert.Error(t, json.Unmarshal([]byte(input), &q), input)
	}
}

func TestDownloadRequest_Choice(t *testing.T) {
	choice, err := DownloadRequest{FormatType: "audio_only", Quality: 160}.Choice()
	require.NoError(t, err)
	assert.Equal(t, model.SelectionChoice{Category: model.CategoryAudioOnly, Quality: 160}, choice)

	_, err = DownloadRequest{FormatType: "everything"}.Choice()
	var invalid *model.InvalidSelectionError
	assert.ErrorAs(t, err, &invalid)
}
