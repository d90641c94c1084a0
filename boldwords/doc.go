// Package boldwords wraps every occurrence of a set of keywords inside a
// string with bold markup, merging overlapping or touching occurrences into
// a single span (problem 0758).
//
//	words = ["ab", "bc"], s = "aabcd"  →  "a<b>abc</b>d"
//
// The default markup is <b>…</b>; WithTags swaps it for any other pair.
//
// Complexity: O(|words|·|s|·L) for the brute-force scan (L = longest word),
// O(k log k) to sort the k occurrences, O(|s|) to rebuild the string.
package boldwords
