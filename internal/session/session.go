package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AdminSentinel is the reserved session value identifying an
// administrator. It is distinct from every numeric user id.
const AdminSentinel = "admin"

// TTL is refreshed on every write; sessions are destroyed only by
// expiry, there is no logout endpoint.
const TTL = 24 * time.Hour

var ErrNotFound = errors.New("session not found")

// Store maps a session token to a user id value: either a numeric user
// id rendered as a string, or AdminSentinel.
type Store interface {
	Set(ctx context.Context, token, userID string) error
	Get(ctx context.Context, token string) (string, error)
}

func NewToken() string {
	return uuid.NewString()
}
