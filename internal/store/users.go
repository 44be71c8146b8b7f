package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"listing_system/internal/domain"
)

// UserStore persists user records in the users collection.
type UserStore struct {
	col *mongo.Collection
}

// NewUserStore returns a UserStore backed by the given client and database.
func NewUserStore(client *mongo.Client, dbName string) *UserStore {
	return &UserStore{col: client.Database(dbName).Collection("users")}
}

// FindByEmail looks a user up by their identity key.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. Email uniqueness is checked before the insert
// and backed by the unique index, so a concurrent duplicate still surfaces
// as ErrEmailTaken.
func (s *UserStore) Create(ctx context.Context, u *domain.User) error {
	if _, err := s.FindByEmail(ctx, u.Email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now()
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	_, err := s.col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrEmailTaken
	}
	return err
}

// EnsureIndexes creates the unique index on email.
func (s *UserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
