package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv_DefaultWhenMissingOrBlank(t *testing.T) {
	t.Setenv("HOSTELKU_TEST_BLANK", "  ")

	assert.Equal(t, "fallback", GetEnv("HOSTELKU_TEST_MISSING", "fallback"))
	assert.Equal(t, "fallback", GetEnv("HOSTELKU_TEST_BLANK", "fallback"))
	assert.Equal(t, "", GetEnv("HOSTELKU_TEST_MISSING"))

	t.Setenv("HOSTELKU_TEST_SET", "value")
	assert.Equal(t, "value", GetEnv("HOSTELKU_TEST_SET", "fallback"))
}

func TestGetEnvBoolAndInt(t *testing.T) {
	t.Setenv("HOSTELKU_TEST_BOOL", "false")
	t.Setenv("HOSTELKU_TEST_BAD_BOOL", "maybe")
	t.Setenv("HOSTELKU_TEST_INT", "42")

	assert.False(t, GetEnvBool("HOSTELKU_TEST_BOOL", true))
	assert.True(t, GetEnvBool("HOSTELKU_TEST_BAD_BOOL", true))
	assert.Equal(t, 42, GetEnvInt("HOSTELKU_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("HOSTELKU_TEST_INT_MISSING", 7))
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("HOSTELKU_TEST_LIST", " 10.0.0.0/8, ,192.168.1.10 ")
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, GetEnvList("HOSTELKU_TEST_LIST"))
	assert.Nil(t, GetEnvList("HOSTELKU_TEST_LIST_MISSING"))
}

func TestLocation(t *testing.T) {
	old := AppTimezone
	t.Cleanup(func() { AppTimezone = old })

	AppTimezone = "UTC"
	assert.Equal(t, time.UTC, Location())

	AppTimezone = "Not/AZone"
	assert.Equal(t, time.UTC, Location())
}
