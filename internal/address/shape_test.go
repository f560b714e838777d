package address_test

import (
	"regexp"
	"testing"

	"github.com/dukerupert/addressbook/internal/address"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var fullPattern = regexp.MustCompile("^(?:" + address.ValidationPattern + ")$")

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		candidate string
		want      bool
	}{
		{"", false},
		{"a", false},
		{"a,b,c", false},
		{"a,b,c,d", true},
		{"a,b,c,d,e", true},
		{"a,,b,c,d", true},
		{",,,,,,,", true},
		{",,,,,,", false},
		{",b,c,d", false},
		{"a,b,c,", false},
		{"a,b,c,,", true},
		{" , , , ", true},
		{address.Example, true},
		{"a,b\r,c,d", false},
		{"a,b,c,d\u0085", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			assert.Equal(t, tt.want, address.IsValidAddress(tt.candidate))
		})
	}
}

func TestIsValidAddress_MatchesPattern(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		candidate := rapid.StringMatching(`[ab ,]{0,14}`).Draw(t, "candidate")

		want := fullPattern.MatchString(candidate)
		if got := address.IsValidAddress(candidate); got != want {
			t.Fatalf("IsValidAddress(%q) = %v, pattern says %v", candidate, got, want)
		}
	})
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name    string
		trimmed string
		want    []string
	}{
		{name: "four", trimmed: "a,b,c,d", want: []string{"a", "b", "c", "d"}},
		{name: "keeps padding", trimmed: "a, b ,c,d", want: []string{"a", " b ", "c", "d"}},
		{name: "extra", trimmed: "a,b,c,d,e", want: []string{"a", "b", "c", "d", "e"}},
		{name: "inner empty kept", trimmed: "a,,c,d", want: []string{"a", "", "c", "d"}},
		{name: "trailing empties dropped", trimmed: "a,b,c,,", want: []string{"a", "b", "c"}},
		{name: "all empty", trimmed: ",,,", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, address.Segments(tt.trimmed))
		})
	}
}

func TestHasOverflow(t *testing.T) {
	assert.False(t, address.HasOverflow("a,b,c,d"))
	assert.True(t, address.HasOverflow("a,b,c,d,e"))
	assert.False(t, address.HasOverflow("a,b,c,d,"), "trailing empty segments are dropped by Segments")
	assert.False(t, address.HasOverflow("a,b,c,d,,,"))
	assert.True(t, address.HasOverflow("a,b,c,d,,e"))
}
