// Package env reads typed values from environment variables, falling back to
// a default when the variable is unset or cannot be parsed.
package env

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

// String returns the variable value or defaultValue.
func String(name string, defaultValue string) string {
	if v, ok := lookup(name); ok {
		return v
	}
	return defaultValue
}

// Int returns the variable parsed as an int, or defaultValue.
func Int(name string, defaultValue int) int {
	v, ok := lookup(name)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

// Bool accepts the spellings understood by strconv.ParseBool.
func Bool(name string, defaultValue bool) bool {
	v, ok := lookup(name)
	if !ok {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}

func Float64(name string, defaultValue float64) float64 {
	v, ok := lookup(name)
	if !ok {
		return defaultValue
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// Seconds reads an integer number of seconds as a time.Duration.
func Seconds(name string, defaultValue time.Duration) time.Duration {
	v, ok := lookup(name)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return defaultValue
	}
	return time.Duration(n) * time.Second
}
