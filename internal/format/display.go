package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cristianoliveira/dexview/internal/domain"
)

// StatScale is the base stat that fills a stat bar completely.
const StatScale = 150

// ImagePlaceholder is shown when an item has no image.
const ImagePlaceholder = "(no image)"

var titleCaser = cases.Title(language.English)

// DisplayName turns a slug such as "mr-mime" into "Mr Mime".
func DisplayName(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

// AbilityName renders an ability slug with spaces instead of hyphens.
func AbilityName(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}

// StatRatio returns base/StatScale capped to [0, 1].
func StatRatio(base int) float64 {
	if base <= 0 {
		return 0
	}
	r := float64(base) / StatScale
	if r > 1 {
		return 1
	}
	return r
}

// StatBar renders a fixed-width ASCII bar for base.
func StatBar(base, width int) string {
	filled := int(StatRatio(base)*float64(width) + 0.5)
	return strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
}

// ItemNumber renders an id as "#025".
func ItemNumber(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// ImageOrPlaceholder returns image, or ImagePlaceholder when it is empty.
func ImageOrPlaceholder(image string) string {
	if image == "" {
		return ImagePlaceholder
	}
	return image
}

// RangeSummary renders "items N-M of total (page p/max)".
func RangeSummary(view domain.View) string {
	return fmt.Sprintf("items %d-%d of %d (page %d/%d)",
		view.RangeStart, view.RangeEnd, view.TotalItems, view.CurrentPage, view.MaxPage)
}

// EmptyMessage returns the message shown for an empty view.
func EmptyMessage(state domain.EmptyState) string {
	switch state {
	case domain.EmptyLoading:
		return "Loading catalog..."
	case domain.EmptyNoFavorites:
		return "No favorites yet"
	case domain.EmptyNoResults:
		return "No results"
	default:
		return ""
	}
}
