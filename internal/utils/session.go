package utils

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionTTL matches the token lifetime.
const SessionTTL = time.Hour

const sessionKeyPrefix = "session:"

// SessionRecord is the server-side session marker stored in Redis.
type SessionRecord struct {
	Email    string    `json:"email"`     // Identity key
	Role     string    `json:"role"`      // Role at login time
	IssuedAt time.Time `json:"issued_at"` // Login time
}

// Sessions maintains server-side session markers in Redis. The markers are
// bookkeeping only: the auth middleware trusts the signed token and never
// consults Redis, so deleting a marker does not revoke a token.
type Sessions struct {
	rdb    *redis.Client
	secret []byte
}

// NewSessions returns a Sessions over the given Redis client. The secret
// signs session cookie values.
func NewSessions(rdb *redis.Client, secret string) *Sessions {
	return &Sessions{rdb: rdb, secret: []byte(secret)}
}

// Create stores a new session marker and returns its ID.
func (s *Sessions) Create(ctx context.Context, email, role string) (string, error) {
	id := uuid.NewString()
	b, err := json.Marshal(SessionRecord{Email: email, Role: role, IssuedAt: time.Now()})
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+id, b, SessionTTL).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// Delete removes a session marker.
func (s *Sessions) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}

// CookieValue returns the session ID with an HMAC trailer so the cookie
// cannot be forged client-side.
func (s *Sessions) CookieValue(id string) string {
	return id + "." + s.sign(id)
}

// ParseCookie verifies a session cookie value and returns the session ID.
func (s *Sessions) ParseCookie(value string) (string, bool) {
	id, sig, ok := strings.Cut(value, ".")
	if !ok || !hmac.Equal([]byte(sig), []byte(s.sign(id))) {
		return "", false
	}
	return id, true
}

func (s *Sessions) sign(id string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
