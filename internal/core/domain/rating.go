package domain

// Seller rating scores. A seller rating is binary: good or bad.
const (
	ScoreBad  = 0
	ScoreGood = 1
)

// Star rating bounds for product ratings.
const (
	MinStars = 1
	MaxStars = 5
)

// ProductRating is the typed view of a product rating document.
type ProductRating struct {
	// Key is the remote store key the document was fetched from.
	Key string

	// RaterID identifies the account that left the rating.
	RaterID string

	// Comments is the free-form review text.
	Comments string

	// Signature proves the rater authored the rating.
	Signature string

	// Stars is the rating value in [MinStars, MaxStars].
	Stars int

	// ExpirationDate is the optional ISO 8601 expiry.
	ExpirationDate string
}

// SellerRating is the typed view of a seller rating document.
type SellerRating struct {
	// Key is the remote store key the document was fetched from.
	Key string

	// RaterID identifies the account that left the rating.
	RaterID string

	// Comments is the free-form review text.
	Comments string

	// Signature proves the rater authored the rating.
	Signature string

	// Score is ScoreGood or ScoreBad.
	Score int
}

// StarCount returns the number of ratings awarding exactly stars.
// The stars argument is clamped to [MinStars, MaxStars].
func StarCount(ratings []ProductRating, stars int) int {
	if stars > MaxStars {
		stars = MaxStars
	}
	if stars < MinStars {
		stars = MinStars
	}
	count := 0
	for _, r := range ratings {
		if r.Stars == stars {
			count++
		}
	}
	return count
}

// StarHistogram returns the count of ratings per star value, indexed
// 1..MaxStars. Index 0 is unused.
func StarHistogram(ratings []ProductRating) [MaxStars + 1]int {
	var hist [MaxStars + 1]int
	for _, r := range ratings {
		if r.Stars >= MinStars && r.Stars <= MaxStars {
			hist[r.Stars]++
		}
	}
	return hist
}

// AverageStars returns the mean star value across ratings, or 0.0
// when there are none.
func AverageStars(ratings []ProductRating) float64 {
	if len(ratings) == 0 {
		return 0.0
	}
	hist := StarHistogram(ratings)
	sum := 0
	for stars := MinStars; stars <= MaxStars; stars++ {
		sum += stars * hist[stars]
	}
	return float64(sum) / float64(len(ratings))
}

// GoodRatings returns the number of positive seller ratings.
func GoodRatings(ratings []SellerRating) int {
	count := 0
	for _, r := range ratings {
		if r.Score == ScoreGood {
			count++
		}
	}
	return count
}

// BadRatings returns the number of negative seller ratings.
func BadRatings(ratings []SellerRating) int {
	count := 0
	for _, r := range ratings {
		if r.Score == ScoreBad {
			count++
		}
	}
	return count
}

// Reputation returns the seller's reputation as a truncated integer
// percentage of good ratings. A seller with zero ratings has a
// reputation of 0, not "unrated".
func Reputation(ratings []SellerRating) int {
	total := len(ratings)
	if total <= 0 {
		return 0
	}
	return int(float64(GoodRatings(ratings)) / float64(total) * 100)
}
