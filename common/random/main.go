package random

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// GetUUID generates a UUID and returns it as a string without hyphens.
func GetUUID() string {
	code := uuid.New().String()
	code = strings.Replace(code, "-", "", -1)
	return code
}

// InvocationID returns a canonical hyphenated UUID, the format expected in
// the amz-sdk-invocation-id header.
func InvocationID() string {
	return uuid.New().String()
}

// RandRange returns a random number between min and max (max is not included)
func RandRange(min, max int) int {
	if max <= min {
		return min
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min)))
	if err != nil {
		// This is unlikely to result in an error, especially on Linux, so it's safe to keep as is.
		panic(err)
	}
	return min + int(n.Int64())
}
