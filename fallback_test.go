package escapify

import "testing"

func TestFallback(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "markup stripped",
			in:   "# Hi\n\nSome *bold* text",
			want: "Hi\n\nSome bold text",
		},
		{
			name: "link keeps target",
			in:   "[site](https://x.com)",
			want: "site (https://x.com)",
		},
		{
			name: "image keeps target",
			in:   "![alt](u.png)",
			want: "alt (u.png)",
		},
		{
			name: "bullet list",
			in:   "- a\n- b",
			want: "• a\n• b",
		},
		{
			name: "ordered list keeps start",
			in:   "3. a\n4. b",
			want: "3. a\n4. b",
		},
		{
			name: "code block kept bare",
			in:   "before\n\n```\ncode here\n```\n\nafter",
			want: "before\n\ncode here\n\nafter",
		},
		{
			name: "soft break kept",
			in:   "a\nb",
			want: "a\nb",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fallback(tt.in); got != tt.want {
				t.Errorf("Fallback(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
