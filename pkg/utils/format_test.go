package utils

import (
	"testing"
	"time"
)

func TestFormatTanggal(t *testing.T) {
	cases := []struct {
		tanggal  time.Time
		expected string
	}{
		{time.Date(2026, time.January, 2, 10, 30, 0, 0, time.UTC), "2 Januari 2026"},
		{time.Date(2025, time.August, 17, 0, 0, 0, 0, time.UTC), "17 Agustus 2025"},
		{time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC), "31 Desember 2024"},
	}

	for _, tc := range cases {
		if got := FormatTanggal(tc.tanggal); got != tc.expected {
			t.Errorf("expected %q, got %q", tc.expected, got)
		}
	}
}
