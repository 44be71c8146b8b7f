package store

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"listing_system/internal/domain"
)

// getByIDProjection is the fixed field set returned by GetByID. Fields added
// by create or update but not listed here are deliberately not exposed on
// the read-by-id path.
var getByIDProjection = bson.D{
	{Key: "listing_url", Value: 1},
	{Key: "description", Value: 1},
	{Key: "neighborhood_overview", Value: 1},
	{Key: "cancellation_policy", Value: 1},
	{Key: "property_type", Value: 1},
	{Key: "room_type", Value: 1},
	{Key: "accommodates", Value: 1},
	{Key: "price", Value: 1},
	{Key: "images", Value: 1},
	{Key: "review_scores", Value: 1},
}

// ListingStore persists listing records in the listingsAndReviews collection.
type ListingStore struct {
	col *mongo.Collection
}

// NewListingStore returns a ListingStore backed by the given client and database.
func NewListingStore(client *mongo.Client, dbName string) *ListingStore {
	return &ListingStore{col: client.Database(dbName).Collection("listingsAndReviews")}
}

// Insert stores a new listing under its externally supplied identifier.
func (s *ListingStore) Insert(ctx context.Context, l *domain.Listing) error {
	_, err := s.col.InsertOne(ctx, l)
	return err
}

// GetByID returns the fixed projection of a listing, or domain.ErrNotFound.
func (s *ListingStore) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	err := s.col.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(getByIDProjection)).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetReviewScores returns the nested review metric of a listing.
// A listing without review data reports ErrNotFound, matching the missing
// listing case.
func (s *ListingStore) GetReviewScores(ctx context.Context, id string) (*domain.ReviewScores, error) {
	var l domain.Listing
	err := s.col.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.D{{Key: "review_scores", Value: 1}})).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if l.ReviewScores == nil {
		return nil, domain.ErrNotFound
	}
	return l.ReviewScores, nil
}

// Update replaces the stored fields of a listing and returns the updated
// document, or domain.ErrNotFound for an unknown identifier.
func (s *ListingStore) Update(ctx context.Context, id string, l *domain.Listing) (*domain.Listing, error) {
	raw, err := bson.Marshal(l)
	if err != nil {
		return nil, err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	delete(fields, "_id") // _id is immutable

	var updated domain.Listing
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a listing by identifier.
func (s *ListingStore) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List fetches one page of listings plus the totals needed for pagination
// controls. An empty propertyType matches everything; a non-empty one is an
// exact, case-insensitive match. page beyond the available range yields an
// empty slice with still-correct totals; clamping is the caller's business.
func (s *ListingStore) List(ctx context.Context, page, perPage int, propertyType string) (*Page, error) {
	filter := searchFilter(propertyType)

	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	cur, err := s.col.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64((page-1)*perPage)).
		SetLimit(int64(perPage)))
	if err != nil {
		return nil, err
	}
	var listings []domain.Listing
	if err := cur.All(ctx, &listings); err != nil {
		return nil, err
	}

	return NewPage(listings, page, perPage, total), nil
}

// searchFilter builds the listing filter predicate. An empty propertyType
// matches everything; a non-empty one matches the property_type field
// exactly, ignoring case.
func searchFilter(propertyType string) bson.M {
	if propertyType == "" {
		return bson.M{}
	}
	return bson.M{"property_type": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(propertyType) + "$",
		Options: "i",
	}}
}

// EnsureIndexes creates the property_type index used by the search filter.
func (s *ListingStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "property_type", Value: 1}},
	})
	return err
}
