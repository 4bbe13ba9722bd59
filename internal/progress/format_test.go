package progress

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ytfetch/internal/model"
)

func TestFormatSpeed(t *testing.T) {
	zero := 0.0
	fast := 3.3 * MiB

	assert.Equal(t, NotAvailable, FormatSpeed(nil))
	assert.Equal(t, NotAvailable, FormatSpeed(&zero))
	assert.Equal(t, "3.3 MiB/s", FormatSpeed(&fast))
}

func TestFormatTotalSize(t *testing.T) {
	tests := []struct {
		total    int64
		expected string
	}{
		{0, NotAvailable},
		{512 * MiB, "512.0 MiB"},
		{999 * MiB, "999.0 MiB"},
		{1000 * MiB, "1.0 GiB"},
		{3 * GiB / 2, "1.5 GiB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatTotalSize(tt.total), "total=%d", tt.total)
	}
}

func TestToMessage_Shapes(t *testing.T) {
	eta := 12
	speed := 1.0 * MiB

	data, err := json.Marshal(ToMessage(model.Downloading(0.45678, 45678, 100000, &speed, &eta)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"downloading","progress":45.7,"speed":"1.0 MiB/s","total_size":"0.1 MiB","eta":12}`, string(data))

	data, err = json.Marshal(ToMessage(model.Downloading(0, 0, 0, nil, nil)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"downloading","progress":0,"speed":"N/A","total_size":"N/A","eta":null}`, string(data))

	data, err = json.Marshal(ToMessage(model.Finished("Song.m4a")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"finished","progress":100,"file_name":"Song.m4a"}`, string(data))

	data, err = json.Marshal(ToMessage(model.Failed("HTTP Error 403")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","message":"HTTP Error 403"}`, string(data))
}
