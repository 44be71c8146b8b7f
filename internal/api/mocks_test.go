package api_test

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"listing_system/internal/domain"
	"listing_system/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mock UserStore --- //

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// --- Mock SessionStore --- //

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, email, role string) (string, error) {
	args := m.Called(ctx, email, role)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionStore) CookieValue(id string) string {
	args := m.Called(id)
	return args.String(0)
}

func (m *MockSessionStore) ParseCookie(value string) (string, bool) {
	args := m.Called(value)
	return args.String(0), args.Bool(1)
}

// --- Mock ListingStore --- //

type MockListingStore struct {
	mock.Mock
}

func (m *MockListingStore) Insert(ctx context.Context, l *domain.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingStore) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if l := args.Get(0); l != nil {
		return l.(*domain.Listing), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockListingStore) GetReviewScores(ctx context.Context, id string) (*domain.ReviewScores, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*domain.ReviewScores), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockListingStore) Update(ctx context.Context, id string, l *domain.Listing) (*domain.Listing, error) {
	args := m.Called(ctx, id, l)
	if u := args.Get(0); u != nil {
		return u.(*domain.Listing), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockListingStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListingStore) List(ctx context.Context, page, perPage int, propertyType string) (*store.Page, error) {
	args := m.Called(ctx, page, perPage, propertyType)
	if p := args.Get(0); p != nil {
		return p.(*store.Page), args.Error(1)
	}
	return nil, args.Error(1)
}
