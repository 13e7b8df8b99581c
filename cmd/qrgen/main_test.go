package main

import "testing"

func TestTrimTrailingNewline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello\n", "hello"},
		{"hello\r\n", "hello"},
		{"hello", "hello"},
		{"hello\n\n", "hello\n"},
		{"\n", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := trimTrailingNewline(tt.in); got != tt.want {
			t.Errorf("trimTrailingNewline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
