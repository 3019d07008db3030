package utils

import (
	"testing"
	"time"
)

func TestNormalizeDateRange(t *testing.T) {
	t.Run("single day", func(t *testing.T) {
		s, e, err := NormalizeDateRange("2025-01-15", "2025-01-15", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Sub(s) != 24*time.Hour {
			t.Fatalf("expected 1 day span, got %s", e.Sub(s))
		}
	})

	t.Run("multi day inclusive", func(t *testing.T) {
		s, e, err := NormalizeDateRange("2025-01-01", "2025-01-03", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Sub(s) != 3*24*time.Hour {
			t.Fatalf("expected 3 day span, got %s", e.Sub(s))
		}
	})

	t.Run("leap day", func(t *testing.T) {
		s, e, err := NormalizeDateRange("2024-02-28", "2024-03-01", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Sub(s) != 3*24*time.Hour {
			t.Fatalf("expected 3 day span across leap day, got %s", e.Sub(s))
		}
	})

	t.Run("max days exceeded", func(t *testing.T) {
		_, _, err := NormalizeDateRange("2025-01-01", "2025-01-20", 14)
		if err == nil {
			t.Fatalf("expected error for exceeding max days")
		}
	})

	t.Run("invalid order", func(t *testing.T) {
		_, _, err := NormalizeDateRange("2025-01-10", "2025-01-01", 10)
		if err == nil {
			t.Fatalf("expected error for reversed dates")
		}
	})

	t.Run("bad format", func(t *testing.T) {
		_, _, err := NormalizeDateRange("01/10/2025", "2025-01-11", 10)
		if err == nil {
			t.Fatalf("expected error for bad format")
		}
	})
}

func TestNormalizeDateRangeUTC(t *testing.T) {
	s, e, err := NormalizeDateRange("2025-05-05", "2025-05-05", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Location() != time.UTC || s.Hour() != 0 || e.Hour() != 0 {
		t.Fatalf("expected UTC midnight boundaries, got %s and %s", s, e)
	}
}
