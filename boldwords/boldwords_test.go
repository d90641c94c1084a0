package boldwords_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harsh-govind/LeetCode-Solutions/boldwords"
)

func TestBoldWords_Table(t *testing.T) {
	cases := []struct {
		name  string
		words []string
		s     string
		want  string
	}{
		{"overlap merged", []string{"ab", "bc"}, "aabcd", "a<b>abc</b>d"},
		{"disjoint", []string{"ab", "cb"}, "aabcd", "a<b>ab</b>cd"},
		{"touching merged", []string{"ab", "cd"}, "abcd", "<b>abcd</b>"},
		{"repeated word", []string{"aa"}, "aaaa", "<b>aaaa</b>"},
		{"two spans", []string{"x"}, "axbxc", "a<b>x</b>b<b>x</b>c"},
		{"whole string", []string{"hello"}, "hello", "<b>hello</b>"},
		{"word longer than s", []string{"abcdef"}, "abc", "abc"},
		{"no match", []string{"zz"}, "abc", "abc"},
		{"empty words", []string{}, "aabcd", "aabcd"},
		{"nil words", nil, "aabcd", "aabcd"},
		{"empty word ignored", []string{""}, "abc", "abc"},
		{"empty subject", []string{"a"}, "", ""},
		{"nested word", []string{"abc", "b"}, "xabcx", "x<b>abc</b>x"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, boldwords.BoldWords(tc.words, tc.s))
		})
	}
}

// TestBoldWords_WithTags checks that custom markup replaces the defaults.
func TestBoldWords_WithTags(t *testing.T) {
	got := boldwords.BoldWords([]string{"ab", "bc"}, "aabcd", boldwords.WithTags("**", "**"))
	assert.Equal(t, "a**abc**d", got)
}

// TestBoldWords_InputUntouched verifies that the words slice keeps its order.
func TestBoldWords_InputUntouched(t *testing.T) {
	words := []string{"bc", "ab"}
	_ = boldwords.BoldWords(words, "aabcd")
	assert.Equal(t, []string{"bc", "ab"}, words)
}
