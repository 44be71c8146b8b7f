package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image is the nested image reference on a listing.
type Image struct {
	PictureURL *string `bson:"picture_url,omitempty" json:"picture_url,omitempty"` // Primary picture URL
}

// ReviewScores is the nested review metric on a listing.
type ReviewScores struct {
	ReviewScoresRating *float64 `bson:"review_scores_rating,omitempty" json:"review_scores_rating,omitempty"` // Aggregate rating
}

// Listing is a property-rental record in the listingsAndReviews collection.
// The identifier is externally supplied, not auto-generated.
type Listing struct {
	ID                   string                `bson:"_id" json:"_id"`                                                     // Listing ID (string)
	ListingURL           string                `bson:"listing_url,omitempty" json:"listing_url,omitempty"`                 // Public listing URL
	Description          string                `bson:"description,omitempty" json:"description,omitempty"`                 // Descriptive text
	NeighborhoodOverview string                `bson:"neighborhood_overview,omitempty" json:"neighborhood_overview,omitempty"` // Area description
	CancellationPolicy   string                `bson:"cancellation_policy,omitempty" json:"cancellation_policy,omitempty"` // Cancellation terms
	PropertyType         string                `bson:"property_type,omitempty" json:"property_type,omitempty"`             // Category, e.g. Apartment
	RoomType             string                `bson:"room_type,omitempty" json:"room_type,omitempty"`                     // Room category
	Accommodates         int                   `bson:"accommodates,omitempty" json:"accommodates,omitempty"`               // Guest capacity
	Price                *primitive.Decimal128 `bson:"price,omitempty" json:"price,omitempty"`                             // Nightly price
	Images               *Image                `bson:"images,omitempty" json:"images,omitempty"`                           // Nested image reference
	ReviewScores         *ReviewScores         `bson:"review_scores,omitempty" json:"review_scores,omitempty"`             // Nested review metric
}
