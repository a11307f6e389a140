package utils

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// SaveAuthSession stores the hashed token for an account so that issued
// tokens can be revoked server-side.
func SaveAuthSession(client *redis.Client, accountID, tokenHash string) error {
	ctx := context.Background()
	if err := client.Set(ctx, AuthSessionPrefix+accountID, tokenHash, AuthSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession retrieves the stored token hash for an account. A
// redis.Nil error means no active session.
func GetAuthSession(client *redis.Client, accountID string) (string, error) {
	ctx := context.Background()
	return client.Get(ctx, AuthSessionPrefix+accountID).Result()
}

// DeleteAuthSession revokes the active session for an account.
func DeleteAuthSession(client *redis.Client, accountID string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthSessionPrefix+accountID).Err()
}
