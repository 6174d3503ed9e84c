package escapify

import "testing"

func TestBeautifyViews(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1234", "1.2 <b>k</b>"},
		{"12,345", "12.3 <b>k</b>"},
		{"2500000", "2.5 <b>m</b>"},
		{"7100000000", "7.1 <b>b</b>"},
		{"abc", "0"},
		{"", "0"},
	}
	for _, tt := range tests {
		if got := BeautifyViews(tt.in); got != tt.want {
			t.Errorf("BeautifyViews(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDurationToSeconds(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"03:25", 205},
		{"0:59", 59},
		{"1:02:03", 3723},
		{"90", 0},
		{"", 0},
		{"x:y", 0},
		{"-1:20", 0},
		{"1:2:3:4", 0},
	}
	for _, tt := range tests {
		if got := DurationToSeconds(tt.in); got != tt.want {
			t.Errorf("DurationToSeconds(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestReadableTime(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0s"},
		{-5, "0s"},
		{59, "59s"},
		{61, "1m 1s"},
		{3661, "1h 1m 1s"},
		{86400, "1d 0h 0m 0s"},
		{90061, "1d 1h 1m 1s"},
	}
	for _, tt := range tests {
		if got := ReadableTime(tt.in); got != tt.want {
			t.Errorf("ReadableTime(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadableBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KiB"},
		{1536, "1.50 KiB"},
		{1 << 20, "1.00 MiB"},
		{3 << 30, "3.00 GiB"},
	}
	for _, tt := range tests {
		if got := ReadableBytes(tt.in); got != tt.want {
			t.Errorf("ReadableBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
