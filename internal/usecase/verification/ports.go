package verification

import (
	"context"
	"time"
)

// TokenStore holds short-lived verification state keyed by string, with
// expiry handled by the store.
type TokenStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type SMSSender interface {
	SendOTP(ctx context.Context, mobileNumber, code string) error
}

type Mailer interface {
	Send(to, subject, htmlBody string) error
}
