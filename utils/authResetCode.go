package utils

import (
	"DentalDesk/cache"
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const resetCodeExpiry = 15 * time.Minute

// GenerateResetCode generates a random 6-digit reset code.
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// SetResetCode stores the reset code for a given email with a 15 minute expiry.
func SetResetCode(ctx context.Context, store *cache.Cache, email, code string) error {
	return store.Set(ctx, "reset_code:"+email, code, resetCodeExpiry)
}

// GetResetCode retrieves the reset code for a given email, or nil when none
// is pending.
func GetResetCode(ctx context.Context, store *cache.Cache, email string) (*string, error) {
	code, err := store.Get(ctx, "reset_code:"+email)
	if err != nil {
		return nil, err
	}
	if code == "" {
		return nil, nil
	}
	return &code, nil
}

// DeleteResetCode removes the reset code for a given email.
func DeleteResetCode(ctx context.Context, store *cache.Cache, email string) error {
	return store.Delete(ctx, "reset_code:"+email)
}
