package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/ytget/ytfetch/internal/catalog"
	"github.com/ytget/ytfetch/internal/model"
)

// InfoRequest is the body of POST /api/info
type InfoRequest struct {
	URL      string `json:"url" binding:"required"`
	ClientID string `json:"client_id"`
}

// InfoResponse is the body of a successful POST /api/info
type InfoResponse struct {
	Title            string          `json:"title"`
	Thumbnail        string          `json:"thumbnail,omitempty"`
	Duration         float64         `json:"duration,omitempty"`
	DurationString   string          `json:"duration_string,omitempty"`
	AvailableFormats catalog.Listing `json:"available_formats"`
	FormatDetails    catalog.Details `json:"format_details"`
	OriginalFilename string          `json:"original_filename"`
}

// DownloadRequest is the body of POST /api/download
type DownloadRequest struct {
	URL             string       `json:"url" binding:"required"`
	FormatType      string       `json:"format_type" binding:"required"`
	Quality         QualityValue `json:"quality"`
	ClientID        string       `json:"client_id" binding:"required"`
	UseCustomFolder bool         `json:"use_custom_folder"`
	FileName        string       `json:"file_name"`
}

// Choice converts the request's category and quality
func (r DownloadRequest) Choice() (model.SelectionChoice, error) {
	cat, err := model.ParseCategory(r.FormatType)
	if err != nil {
		return model.SelectionChoice{}, err
	}
	return model.SelectionChoice{Category: cat, Quality: int(r.Quality)}, nil
}

// SavedResponse is returned instead of the file in custom folder mode
type SavedResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// QualityValue accepts 720, "720", "720p", "128k", "" or null
type QualityValue int

// UnmarshalJSON implements json.Unmarshaler
func (q *QualityValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*q = model.QualityBest
		return nil
	}

	if data[0] == '"' {
		var label string
		if err := json.Unmarshal(data, &label); err != nil {
			return err
		}
		v, err := catalog.ParseLabel(label)
		if err != nil {
			return err
		}
		*q = QualityValue(v)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("quality must be a number or a label: %w", err)
	}
	if n < 0 || n > math.MaxInt32 {
		return fmt.Errorf("quality %v is out of range", n)
	}
	*q = QualityValue(int(n))
	return nil
}
