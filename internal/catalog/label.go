package catalog

import (
	"fmt"
	"strconv"

	"github.com/ytget/ytfetch/internal/model"
)

// FormatLabel renders a quality key for display, e.g. "1080p" or "128k"
func FormatLabel(cat model.Category, quality int) string {
	return strconv.Itoa(quality) + cat.QualityUnit()
}

// ParseLabel reads a quality typed or selected by a user.
// Non-digit characters are dropped, so "1080p" gives 1080 and "128k" gives 128.
// An empty label or one without digits means best available.
func ParseLabel(label string) (int, error) {
	digits := digitsOnly(label)
	if digits == "" {
		return model.QualityBest, nil
	}
	q, err := strconv.Atoi(digits)
	if err != nil {
		return 0, &model.InvalidSelectionError{Reason: fmt.Sprintf("quality %q is not a number", label)}
	}
	return q, nil
}
