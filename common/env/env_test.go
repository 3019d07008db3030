package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetters(t *testing.T) {
	t.Setenv("CLOUDSDK_TEST_STR", "  hello ")
	t.Setenv("CLOUDSDK_TEST_INT", "42")
	t.Setenv("CLOUDSDK_TEST_BAD_INT", "forty-two")
	t.Setenv("CLOUDSDK_TEST_BOOL", "true")
	t.Setenv("CLOUDSDK_TEST_FLOAT", "0.25")
	t.Setenv("CLOUDSDK_TEST_SECONDS", "90")
	t.Setenv("CLOUDSDK_TEST_EMPTY", "   ")

	require.Equal(t, "hello", String("CLOUDSDK_TEST_STR", "x"))
	require.Equal(t, "x", String("CLOUDSDK_TEST_EMPTY", "x"))
	require.Equal(t, "x", String("CLOUDSDK_TEST_UNSET", "x"))
	require.Equal(t, 42, Int("CLOUDSDK_TEST_INT", 1))
	require.Equal(t, 1, Int("CLOUDSDK_TEST_BAD_INT", 1))
	require.True(t, Bool("CLOUDSDK_TEST_BOOL", false))
	require.False(t, Bool("CLOUDSDK_TEST_UNSET", false))
	require.InDelta(t, 0.25, Float64("CLOUDSDK_TEST_FLOAT", 1), 1e-9)
	require.Equal(t, 90*time.Second, Seconds("CLOUDSDK_TEST_SECONDS", time.Second))
	require.Equal(t, time.Second, Seconds("CLOUDSDK_TEST_BAD_INT", time.Second))
}
