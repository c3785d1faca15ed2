package services

import (
	"sort"
	"strings"
	"time"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
	"github.com/vendra-labs/vendra-cli/internal/logger"
)

// Assembler post-processes resolved listings into a presentable
// catalog: content-policy filtering and multi-criterion sorting.
type Assembler struct {
	restrictedCategory string
}

// NewAssembler creates an assembler excluding the named category.
// An empty name disables the content-policy filter.
func NewAssembler(restrictedCategory string) *Assembler {
	return &Assembler{restrictedCategory: restrictedCategory}
}

// Filter drops listings carrying the restricted category anywhere in
// their category or subcategory tag set.
func (a *Assembler) Filter(listings []domain.Listing) []domain.Listing {
	if a.restrictedCategory == "" {
		return listings
	}

	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if l.HasCategory(a.restrictedCategory) {
			logger.Info("Excluding %q: restricted category", l.ProductName)
			continue
		}
		out = append(out, l)
	}
	return out
}

// SortBy returns a sorted copy of the catalog. Sorts are stable:
// ties keep their insertion order. Reserved orders (Category,
// MostFavorited, MostSales, AverageRating) and SortNone pass the
// catalog through untouched.
func (a *Assembler) SortBy(listings []domain.Listing, order domain.SortOrder) []domain.Listing {
	sorted := make([]domain.Listing, len(listings))
	copy(sorted, listings)

	switch order {
	case domain.SortByMostRecent:
		sort.SliceStable(sorted, func(i, j int) bool {
			return parseListingTime(sorted[i].Date).After(parseListingTime(sorted[j].Date))
		})
	case domain.SortByOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return parseListingTime(sorted[i].Date).Before(parseListingTime(sorted[j].Date))
		})
	case domain.SortByAlphabetical:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].ProductName) < strings.ToLower(sorted[j].ProductName)
		})
	case domain.SortByPriceLowest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case domain.SortByPriceHighest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case domain.SortNone, domain.SortByCategory,
		domain.SortByMostFavorited, domain.SortByMostSales, domain.SortByAverageRating:
		// Reserved or no-op orders.
	}

	return sorted
}

// Limit caps the catalog at n entries. n <= 0 means no cap.
func Limit(listings []domain.Listing, n int) []domain.Listing {
	if n <= 0 || len(listings) <= n {
		return listings
	}
	return listings[:n]
}

// parseListingTime parses a listing timestamp. A trailing "Z" is
// normalised to the "+00:00" UTC offset before parsing, matching the
// published document format. Unparseable timestamps sort as the zero
// time, i.e. oldest.
func parseListingTime(value string) time.Time {
	if strings.HasSuffix(value, "Z") {
		value = strings.TrimSuffix(value, "Z") + "+00:00"
	}
	for _, layout := range []string{
		"2006-01-02T15:04:05.999999999-07:00",
		"2006-01-02T15:04:05-07:00",
		"2006-01-02T15:04:05",
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
