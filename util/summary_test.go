package util

import (
	"strings"
	"testing"
)

func TestSummarizeObservation(t *testing.T) {
	cases := []struct {
		name     string
		obs      interface{}
		expected string
	}{
		{"nil", nil, "nil"},
		{"string", "state-4", "state-4"},
		{"int", 42, "int: 42"},
		{"short slice", []int{1, 2, 3}, "slice(3) [1 2 3]"},
		{"long slice", []int{1, 2, 3, 4, 5, 6, 7}, "slice(7) [1...7]"},
		{"map", map[string]int{"a": 1, "b": 2}, "map(2)"},
	}
	for _, c := range cases {
		if got := SummarizeObservation(c.obs); got != c.expected {
			t.Errorf("%s: expected %q, got %q", c.name, c.expected, got)
		}
	}
}

func TestSummarizeObservationTruncates(t *testing.T) {
	got := SummarizeObservation(strings.Repeat("x", 500))
	if len(got) != 100 {
		t.Errorf("expected a 100 character summary, got %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected a truncation marker, got %q", got)
	}
}
