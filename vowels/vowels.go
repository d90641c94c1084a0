// Package vowels counts the words in an index range that start and end with
// a lowercase vowel (problem 2586).
package vowels

// VowelStrings returns how many of words[left..right] (inclusive) begin and
// end with one of a, e, i, o, u. Empty words never count.
//
// 0 ≤ left ≤ right < len(words) is a caller guarantee; indices outside the
// slice panic with the usual bounds error.
func VowelStrings(words []string, left, right int) int {
	count := 0
	for _, w := range words[left : right+1] {
		if len(w) > 0 && isVowel(w[0]) && isVowel(w[len(w)-1]) {
			count++
		}
	}

	return count
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}

	return false
}
