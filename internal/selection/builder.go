package selection

import (
	"fmt"

	"github.com/ytget/ytfetch/internal/model"
)

// yt-dlp format selectors
const (
	combinedBounded  = "bestvideo[height<=%d]+bestaudio/best[height<=%d]"
	combinedBest     = "bestvideo+bestaudio/best"
	videoOnlyBounded = "bestvideo[height<=%d]"
	videoOnlyBest    = "bestvideo"
	audioOnlyBounded = "bestaudio[abr<=%d]"
	audioOnlyBest    = "bestaudio"
)

// Build derives the engine selector for a choice. It is a pure function of
// the category and quality.
func Build(choice model.SelectionChoice) (model.SelectionExpression, error) {
	if choice.Quality < 0 {
		return "", &model.InvalidSelectionError{
			Category: choice.Category.String(),
			Quality:  choice.Quality,
			Reason:   "quality must not be negative",
		}
	}

	q := choice.Quality
	switch choice.Category {
	case model.CategoryCombined:
		if choice.IsBest() {
			return combinedBest, nil
		}
		return model.SelectionExpression(fmt.Sprintf(combinedBounded, q, q)), nil
	case model.CategoryVideoOnly:
		if choice.IsBest() {
			return videoOnlyBest, nil
		}
		return model.SelectionExpression(fmt.Sprintf(videoOnlyBounded, q)), nil
	case model.CategoryAudioOnly:
		if choice.IsBest() {
			return audioOnlyBest, nil
		}
		return model.SelectionExpression(fmt.Sprintf(audioOnlyBounded, q)), nil
	default:
		return "", &model.InvalidSelectionError{
			Category: choice.Category.String(),
			Quality:  choice.Quality,
			Reason:   "unknown category",
		}
	}
}

// Validate checks that choice is offered by qm
func Validate(choice model.SelectionChoice, qm model.QualityMap) error {
	if !qm.HasCategory(choice.Category) {
		return &model.InvalidSelectionError{
			Category: choice.Category.String(),
			Quality:  choice.Quality,
			Reason:   "category not available for this URL",
		}
	}
	if !choice.IsBest() && !qm.Has(choice.Category, choice.Quality) {
		return &model.InvalidSelectionError{
			Category: choice.Category.String(),
			Quality:  choice.Quality,
			Reason:   "quality not available for this URL",
		}
	}
	return nil
}

// NeedsMuxer reports whether downloads of cat may merge separate tracks
func NeedsMuxer(cat model.Category) bool {
	return cat == model.CategoryCombined
}
