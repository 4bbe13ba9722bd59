package catalog

import (
	"slices"

	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ytget/ytfetch/internal/model"
)

// Order selects how qualities are sorted inside a category
type Order int

const (
	// OrderAscending is used by the web API listing
	OrderAscending Order = iota
	// OrderDescending is used by the desktop selectors
	OrderDescending
)

// Option is one selectable quality of a category
type Option struct {
	Quality    int      `json:"quality"`
	Label      string   `json:"label"`
	Extensions []string `json:"extensions"`
}

// Group holds the options of a single non-empty category
type Group struct {
	Category model.Category `json:"category"`
	Options  []Option       `json:"options"`
}

// Labels returns the display labels of the group's options
func (g Group) Labels() []string {
	return lo.Map(g.Options, func(o Option, _ int) string { return o.Label })
}

// Listing is a QualityMap in display order: combined, video_only, audio_only,
// with empty categories left out.
type Listing []Group

// NewListing renders qm with qualities sorted per order
func NewListing(qm model.QualityMap, order Order) Listing {
	listing := make(Listing, 0, len(model.Categories()))

	for _, cat := range model.Categories() {
		if !qm.HasCategory(cat) {
			continue
		}
		qualities := qm.Qualities(cat)
		if order == OrderDescending {
			slices.Reverse(qualities)
		}
		options := lo.Map(qualities, func(q int, _ int) Option {
			return Option{
				Quality:    q,
				Label:      FormatLabel(cat, q),
				Extensions: qm.Extensions(cat, q).List(),
			}
		})
		listing = append(listing, Group{Category: cat, Options: options})
	}

	return listing
}

// Categories returns the categories present in the listing, in order
func (l Listing) Categories() []model.Category {
	return lo.Map(l, func(g Group, _ int) model.Category { return g.Category })
}

// Find returns the group for cat
func (l Listing) Find(cat model.Category) (Group, bool) {
	return lo.Find(l, func(g Group) bool { return g.Category == cat })
}

// MarshalJSON encodes the listing as an object of label arrays whose keys
// keep the display order, e.g. {"combined":["360p","720p"],"audio_only":["128k"]}.
func (l Listing) MarshalJSON() ([]byte, error) {
	return l.ordered(func(g Group) any { return g.Labels() }).MarshalJSON()
}

// Details wraps a listing so it encodes options with their extensions
type Details Listing

// MarshalJSON encodes each category as {"720p":["mp4","webm"], ...}
func (d Details) MarshalJSON() ([]byte, error) {
	return Listing(d).ordered(func(g Group) any {
		options := orderedmap.New[string, []string](len(g.Options))
		for _, o := range g.Options {
			options.Set(o.Label, o.Extensions)
		}
		return options
	}).MarshalJSON()
}

func (l Listing) ordered(value func(Group) any) *orderedmap.OrderedMap[string, any] {
	om := orderedmap.New[string, any](len(l))
	for _, g := range l {
		om.Set(g.Category.String(), value(g))
	}
	return om
}
