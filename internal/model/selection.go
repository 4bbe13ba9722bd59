package model

import "fmt"

// QualityBest asks for the best stream of a category without a bound
const QualityBest = 0

// SelectionChoice is the user's pick of category and quality key
type SelectionChoice struct {
	Category Category
	Quality  int // QualityBest means no bound
}

// IsBest reports whether the choice carries no quality bound
func (c SelectionChoice) IsBest() bool {
	return c.Quality == QualityBest
}

// String returns a label like "combined/1080p" or "audio_only/best"
func (c SelectionChoice) String() string {
	if c.IsBest() {
		return fmt.Sprintf("%s/best", c.Category)
	}
	return fmt.Sprintf("%s/%d%s", c.Category, c.Quality, c.Category.QualityUnit())
}

// SelectionExpression is a yt-dlp format selector such as "bestvideo[height<=720]"
type SelectionExpression string

// String returns the expression text
func (e SelectionExpression) String() string {
	return string(e)
}
