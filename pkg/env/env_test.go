package env_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/store-dashboard/pkg/env"
)

func TestParse_Returns(t *testing.T) {
	t.Setenv("TEST_SESSION_TTL", "15m")
	t.Setenv("TEST_REDIS_DB", "not-a-number")

	ttl, err := env.Parse[time.Duration]("TEST_SESSION_TTL")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, ttl)

	_, err = env.Parse[int]("TEST_REDIS_DB")
	assert.Error(t, err)

	_, err = env.Parse[string]("TEST_NOT_DEFINED_VARIABLE")
	assert.Error(t, err)
}

func TestParseOptional_ReturnsNilWhenNotSet(t *testing.T) {
	t.Setenv("TEST_EMPTY_VARIABLE", "")

	v, err := env.ParseOptional[bool]("TEST_EMPTY_VARIABLE")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = env.ParseOptional[bool]("TEST_NOT_DEFINED_VARIABLE")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestParseDefault_ReturnsFallback(t *testing.T) {
	t.Setenv("TEST_SESSION_STORE", "redis")

	store, err := env.ParseDefault("TEST_SESSION_STORE", "cookie")
	require.NoError(t, err)
	assert.Equal(t, "redis", store)

	store, err = env.ParseDefault("TEST_NOT_DEFINED_VARIABLE", "cookie")
	require.NoError(t, err)
	assert.Equal(t, "cookie", store)
}

func TestMust_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		env.Must(env.Parse[int]("TEST_NOT_DEFINED_VARIABLE"))
	})
}
