package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvPrefersLoadedFile(t *testing.T) {
	Env = map[string]string{"INKFOX_TEST_KEY": "from-file"}
	t.Cleanup(func() { Env = nil })
	t.Setenv("INKFOX_TEST_KEY", "from-os")

	assert.Equal(t, "from-file", GetEnv("INKFOX_TEST_KEY", "default"))
}

func TestGetEnvFallsBackToOSAndDefault(t *testing.T) {
	Env = nil
	t.Setenv("INKFOX_TEST_OS", "from-os")

	assert.Equal(t, "from-os", GetEnv("INKFOX_TEST_OS", "default"))
	assert.Equal(t, "default", GetEnv("INKFOX_TEST_MISSING", "default"))
}

func TestGetEnvInt(t *testing.T) {
	Env = nil
	t.Setenv("INKFOX_TEST_INT", "25")
	t.Setenv("INKFOX_TEST_BAD_INT", "many")

	assert.Equal(t, 25, GetEnvInt("INKFOX_TEST_INT", 10))
	assert.Equal(t, 10, GetEnvInt("INKFOX_TEST_BAD_INT", 10))
	assert.Equal(t, 7, GetEnvInt("INKFOX_TEST_INT_MISSING", 7))
}

func TestGetEnvDuration(t *testing.T) {
	Env = nil
	t.Setenv("INKFOX_TEST_TTL", "90s")
	t.Setenv("INKFOX_TEST_BAD_TTL", "soon")

	assert.Equal(t, 90*time.Second, GetEnvDuration("INKFOX_TEST_TTL", time.Minute))
	assert.Equal(t, time.Minute, GetEnvDuration("INKFOX_TEST_BAD_TTL", time.Minute))
}

func TestIsDev(t *testing.T) {
	Env = nil
	t.Setenv("APP_ENV", "dev")
	assert.True(t, IsDev())

	t.Setenv("APP_ENV", "prod")
	assert.False(t, IsDev())
}
