package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("TEST_APP_NAME", "TeenTops")

	assert.Equal(t, "TeenTops", getEnvAsString("TEST_APP_NAME", "fallback"))
	assert.Equal(t, "fallback", getEnvAsString("TEST_MISSING", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_MAX_CONNS", "25")
	t.Setenv("TEST_NOT_A_NUMBER", "lots")

	assert.Equal(t, 25, getEnvAsInt("TEST_MAX_CONNS", 10))
	assert.Equal(t, 10, getEnvAsInt("TEST_NOT_A_NUMBER", 10))
	assert.Equal(t, 10, getEnvAsInt("TEST_MISSING", 10))
}

func TestGetEnvAsTimeDuration(t *testing.T) {
	t.Setenv("TEST_TIMEOUT", "30")

	assert.Equal(t, 30*time.Second, getEnvAsTimeDuration("TEST_TIMEOUT", 5*time.Second))
	assert.Equal(t, 5*time.Second, getEnvAsTimeDuration("TEST_MISSING", 5*time.Second))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_ENABLED", "true")
	t.Setenv("TEST_DISABLED", "0")
	t.Setenv("TEST_GARBAGE", "yes please")

	assert.True(t, getEnvAsBool("TEST_ENABLED", false))
	assert.False(t, getEnvAsBool("TEST_DISABLED", true))
	assert.True(t, getEnvAsBool("TEST_GARBAGE", true))
	assert.False(t, getEnvAsBool("TEST_MISSING", false))
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("TEST_ORIGINS", "https://teentops.pk, https://admin.teentops.pk ,")

	assert.Equal(t,
		[]string{"https://teentops.pk", "https://admin.teentops.pk"},
		getEnvAsSlice("TEST_ORIGINS", nil))

	assert.Equal(t, []string{"*"}, getEnvAsSlice("TEST_MISSING", []string{"*"}))
}
