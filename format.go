package escapify

import (
	"fmt"
	"strconv"
	"strings"
)

// BeautifyViews abbreviates a view count for captions: 1234 becomes
// "1.2 <b>k</b>". Non-digit characters are ignored, so "12,345" works.
// Unparseable input collapses to "0".
func BeautifyViews(views string) string {
	var digits strings.Builder
	for _, r := range views {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.ParseUint(digits.String(), 10, 64)
	if err != nil {
		return "0"
	}
	switch {
	case n < 1_000:
		return strconv.FormatUint(n, 10)
	case n < 1_000_000:
		return fmt.Sprintf("%.1f <b>k</b>", float64(n)/1_000)
	case n < 1_000_000_000:
		return fmt.Sprintf("%.1f <b>m</b>", float64(n)/1_000_000)
	default:
		return fmt.Sprintf("%.1f <b>b</b>", float64(n)/1_000_000_000)
	}
}

// DurationToSeconds parses a "MM:SS" or "HH:MM:SS" duration string.
// Anything else, including a bare number of seconds, yields 0.
func DurationToSeconds(duration string) int {
	if duration == "" || !strings.Contains(duration, ":") {
		return 0
	}
	parts := strings.Split(duration, ":")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0
		}
		nums[i] = n
	}
	switch len(nums) {
	case 2:
		return nums[0]*60 + nums[1]
	case 3:
		return nums[0]*3600 + nums[1]*60 + nums[2]
	}
	return 0
}

// ReadableTime renders a second count as "1d 2h 3m 4s", dropping leading
// zero units.
func ReadableTime(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}
	days := seconds / 86400
	hours := seconds % 86400 / 3600
	minutes := seconds % 3600 / 60
	secs := seconds % 60

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	if hours > 0 || b.Len() > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}
	if minutes > 0 || b.Len() > 0 {
		fmt.Fprintf(&b, "%dm ", minutes)
	}
	fmt.Fprintf(&b, "%ds", secs)
	return b.String()
}

// ReadableBytes renders a byte count with IEC units: "1.50 MiB".
func ReadableBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	value := float64(n)
	exp := 0
	for value >= unit && exp < 5 {
		value /= unit
		exp++
	}
	suffixes := [...]string{"KiB", "MiB", "GiB", "TiB", "PiB"}
	return fmt.Sprintf("%.2f %s", value, suffixes[exp-1])
}
