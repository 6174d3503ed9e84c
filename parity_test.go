package escapify

import "testing"

func TestFixBacktickParity(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "even count untouched",
			in:   "a `x` b",
			want: "a `x` b",
		},
		{
			name: "odd count escaped",
			in:   "a ` b",
			want: "a \\` b",
		},
		{
			name: "three ticks all escaped",
			in:   "tick ` and `code`",
			want: "tick \\` and \\`code\\`",
		},
		{
			name: "escaped ticks do not count",
			in:   "a \\` b",
			want: "a \\` b",
		},
		{
			name: "escaped plus raw is odd",
			in:   "a \\` b ` c",
			want: "a \\` b \\` c",
		},
		{
			name: "fence interior skipped",
			in:   "```\n`\n```",
			want: "```\n`\n```",
		},
		{
			name: "line after fence still checked",
			in:   "```\ncode\n```\nstray `",
			want: "```\ncode\n```\nstray \\`",
		},
		{
			name: "per line parity",
			in:   "one `\ntwo `x` ok",
			want: "one \\`\ntwo `x` ok",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fixBacktickParity(tt.in); got != tt.want {
				t.Errorf("fixBacktickParity(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
