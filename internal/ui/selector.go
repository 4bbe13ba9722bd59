package ui

import (
	"github.com/samber/lo"

	"github.com/ytget/ytfetch/internal/catalog"
	"github.com/ytget/ytfetch/internal/model"
)

// FormatSelector holds the options shown by the format and quality selects
// after a fetch. Qualities are kept highest first.
type FormatSelector struct {
	listing   catalog.Listing
	qualities model.QualityMap
}

// NewFormatSelector builds the selector state for qm
func NewFormatSelector(qm model.QualityMap) *FormatSelector {
	return &FormatSelector{
		listing:   catalog.NewListing(qm, catalog.OrderDescending),
		qualities: qm,
	}
}

// Empty reports whether there is nothing to choose from
func (s *FormatSelector) Empty() bool {
	return s == nil || len(s.listing) == 0
}

// QualityMap returns the map the selector was built from
func (s *FormatSelector) QualityMap() model.QualityMap {
	if s == nil {
		return nil
	}
	return s.qualities
}

// Categories returns the non-empty categories in display order
func (s *FormatSelector) Categories() []model.Category {
	if s.Empty() {
		return nil
	}
	return s.listing.Categories()
}

// CategoryLabels returns localized names for Categories
func (s *FormatSelector) CategoryLabels(loc *Localization) []string {
	return lo.Map(s.Categories(), func(cat model.Category, _ int) string {
		return loc.CategoryText(cat)
	})
}

// CategoryAt returns the category shown at index i of the format select
func (s *FormatSelector) CategoryAt(i int) (model.Category, bool) {
	cats := s.Categories()
	if i < 0 || i >= len(cats) {
		return 0, false
	}
	return cats[i], true
}

// IndexOf returns the position of cat in the format select, or 0 if absent
func (s *FormatSelector) IndexOf(cat model.Category) int {
	if _, i, ok := lo.FindIndexOf(s.Categories(), func(c model.Category) bool { return c == cat }); ok {
		return i
	}
	return 0
}

// QualityLabels returns the quality labels of cat, e.g. ["1080p", "720p"]
func (s *FormatSelector) QualityLabels(cat model.Category) []string {
	if s.Empty() {
		return nil
	}
	group, ok := s.listing.Find(cat)
	if !ok {
		return nil
	}
	return group.Labels()
}

// Choice turns the selected category and quality label into a selection
func (s *FormatSelector) Choice(cat model.Category, label string) (model.SelectionChoice, error) {
	if s.Empty() || !s.qualities.HasCategory(cat) {
		return model.SelectionChoice{}, &model.InvalidSelectionError{Category: cat.String(), Reason: "no formats fetched for this category"}
	}
	quality, err := catalog.ParseLabel(label)
	if err != nil {
		return model.SelectionChoice{}, err
	}
	return model.SelectionChoice{Category: cat, Quality: quality}, nil
}
