// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/RaynerdTech/ToDo/internal/platform/constants"
)

// RedisRevocationRepository implements RevocationRepository using Redis.
type RedisRevocationRepository struct {
	client *redis.Client
}

// NewRevocationRepository creates a new Redis-backed RevocationRepository.
func NewRevocationRepository(client *redis.Client) *RedisRevocationRepository {
	return &RedisRevocationRepository{client: client}
}

/*
Revoke stores the token id until the token would have expired.

Non-positive ttl values are a no-op: the token is already unusable.

Parameters:
  - context: context.Context
  - tokenID: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisRevocationRepository) Revoke(context context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := constants.RedisPrefixRevokedToken + tokenID

	if err := repository.client.Set(context, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_revocation_set_failed: %w", err)
	}

	return nil
}

/*
IsRevoked reports whether the token id is on the revocation list.

Parameters:
  - context: context.Context
  - tokenID: string

Returns:
  - bool: true if revoked
  - error: Connectivity errors
*/
func (repository *RedisRevocationRepository) IsRevoked(context context.Context, tokenID string) (bool, error) {
	key := constants.RedisPrefixRevokedToken + tokenID

	count, err := repository.client.Exists(context, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis_revocation_exists_failed: %w", err)
	}

	return count > 0, nil
}
