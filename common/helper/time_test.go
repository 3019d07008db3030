package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCalcElapsedTime(t *testing.T) {
	require.Equal(t, int64(1), CalcElapsedTime(time.Now().Add(-time.Microsecond)))
	require.GreaterOrEqual(t, CalcElapsedTime(time.Now().Add(-1500*time.Millisecond)), int64(1500))
}
