package store

import (
	"strconv"

	"listing_system/internal/domain"
)

// RatedListing is a listing plus its display rating, derived at read time.
type RatedListing struct {
	domain.Listing
	ReviewScoresRating string `json:"review_scores_rating"`
}

// Page is one slice of matching listings plus pagination totals.
type Page struct {
	Items      []RatedListing `json:"listings"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	TotalCount int64          `json:"total_count"`
	TotalPages int            `json:"total_pages"`
}

// NewPage wraps a page slice with its totals and derives display ratings.
func NewPage(listings []domain.Listing, page, perPage int, total int64) *Page {
	items := make([]RatedListing, len(listings))
	for i, l := range listings {
		items[i] = RatedListing{Listing: l, ReviewScoresRating: DisplayRating(l)}
	}
	return &Page{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		TotalCount: total,
		TotalPages: TotalPages(total, perPage),
	}
}

// TotalPages is ceil(total / perPage) with a floor of one page, so pagination
// controls stay well-formed even for an empty result set.
func TotalPages(total int64, perPage int) int {
	if total <= 0 {
		return 1
	}
	return (int(total) + perPage - 1) / perPage
}

// DisplayRating renders the nested review score, or "N/A" when the listing
// carries none.
func DisplayRating(l domain.Listing) string {
	if l.ReviewScores != nil && l.ReviewScores.ReviewScoresRating != nil {
		return strconv.FormatFloat(*l.ReviewScores.ReviewScoresRating, 'f', -1, 64)
	}
	return "N/A"
}
