package domain

import "testing"

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3661, "01:01:01"},
		// Hours do not wrap at 24.
		{360000, "100:00:00"},
	}
	for _, tc := range cases {
		if got := FormatSeconds(tc.seconds); got != tc.want {
			t.Fatalf("FormatSeconds(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{1, "1.0 B"},
		{512, "0.5 KB"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
		{int64(3) << 40, "3.0 TB"},
	}
	for _, tc := range cases {
		if got := FormatSize(tc.size); got != tc.want {
			t.Fatalf("FormatSize(%d) = %q, want %q", tc.size, got, tc.want)
		}
	}
}
