// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package redis_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaynerdTech/ToDo/internal/platform/redis"
)

/*
TestParseOptions applies pool settings on top of the URL fields.
*/
func TestParseOptions(t *testing.T) {
	options, err := redis.ParseOptions("redis://:secret@cache:6380/2")
	require.NoError(t, err)

	assert.Equal(t, "cache:6380", options.Addr)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, 2, options.DB)
	assert.Equal(t, 10, options.PoolSize)
	assert.Equal(t, 2*time.Second, options.ReadTimeout)
}

/*
TestParseOptions_InvalidURL rejects unsupported schemes.
*/
func TestParseOptions_InvalidURL(t *testing.T) {
	_, err := redis.ParseOptions("http://cache:6379")
	assert.Error(t, err)
}
