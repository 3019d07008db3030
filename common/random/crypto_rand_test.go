package random_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/cloudsdk/common/random"
)

func TestUniqueness(t *testing.T) {
	tests := []struct {
		name       string
		generator  func() string
		iterations int
	}{
		{name: "GetUUID", generator: random.GetUUID, iterations: 10000},
		{name: "InvocationID", generator: random.InvocationID, iterations: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(map[string]struct{}, tt.iterations)
			for range tt.iterations {
				v := tt.generator()
				_, dup := seen[v]
				require.False(t, dup, "duplicate value %q", v)
				seen[v] = struct{}{}
			}
		})
	}
}

func TestInvocationIDIsCanonical(t *testing.T) {
	id := random.InvocationID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	require.Len(t, id, 36)
	require.Len(t, random.GetUUID(), 32)
}

func TestRandRange(t *testing.T) {
	for range 1000 {
		n := random.RandRange(5, 10)
		require.GreaterOrEqual(t, n, 5)
		require.Less(t, n, 10)
	}
	require.Equal(t, 3, random.RandRange(3, 3))
}
