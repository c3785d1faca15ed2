package domain

// SortOrder selects how an assembled catalog is ordered.
type SortOrder int

// Catalog sort orders. Category, MostFavorited, MostSales and
// AverageRating are declared but reserved for future aggregation;
// selecting them is a no-op, not an error.
const (
	SortNone SortOrder = iota
	SortByCategory
	SortByMostRecent
	SortByOldest
	SortByAlphabetical
	SortByPriceLowest
	SortByPriceHighest
	SortByMostFavorited
	SortByMostSales
	SortByAverageRating
)

var sortOrderNames = map[SortOrder]string{
	SortNone:            "none",
	SortByCategory:      "category",
	SortByMostRecent:    "most-recent",
	SortByOldest:        "oldest",
	SortByAlphabetical:  "alphabetical",
	SortByPriceLowest:   "price-lowest",
	SortByPriceHighest:  "price-highest",
	SortByMostFavorited: "most-favorited",
	SortByMostSales:     "most-sales",
	SortByAverageRating: "average-rating",
}

// String returns the CLI-facing name of the sort order.
func (s SortOrder) String() string {
	if name, ok := sortOrderNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSortOrder converts a CLI-facing name into a SortOrder.
func ParseSortOrder(name string) (SortOrder, bool) {
	for order, n := range sortOrderNames {
		if n == name {
			return order, true
		}
	}
	return SortNone, false
}
