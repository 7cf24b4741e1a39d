package ui

import "testing"

func TestSuggestClosest(t *testing.T) {
	t.Parallel()

	branches := []string{"main", "feature/login", "feature/logout", "bugfix/header"}

	tests := []struct {
		input string
		want  string
	}{
		{"featlogin", "feature/login"},
		{"mai", "main"},
		{"zzzz", ""},
	}

	for _, tt := range tests {
		if got := SuggestClosest(tt.input, branches); got != tt.want {
			t.Errorf("SuggestClosest(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
