package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User Model
type User struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	// Email is the unique identity key; Password holds the bcrypt digest,
	// never the plaintext.
	Username  string    `bson:"username" json:"username"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Role      string    `bson:"role" json:"role"` // Role: user or admin
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
