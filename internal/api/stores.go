package api

import (
	"context"

	"listing_system/internal/domain"
	"listing_system/internal/store"
)

// UserStore is the user persistence surface the auth handlers need.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

// ListingStore is the listing persistence surface the listing handlers need.
type ListingStore interface {
	Insert(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	GetReviewScores(ctx context.Context, id string) (*domain.ReviewScores, error)
	Update(ctx context.Context, id string, l *domain.Listing) (*domain.Listing, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, perPage int, propertyType string) (*store.Page, error)
}

// SessionStore is the server-side session surface the auth handlers need.
type SessionStore interface {
	Create(ctx context.Context, email, role string) (string, error)
	Delete(ctx context.Context, id string) error
	CookieValue(id string) string
	ParseCookie(value string) (string, bool)
}
