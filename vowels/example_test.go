package vowels_test

import (
	"fmt"

	"github.com/harsh-govind/LeetCode-Solutions/vowels"
)

func ExampleVowelStrings() {
	fmt.Println(vowels.VowelStrings([]string{"are", "amy", "u"}, 0, 2))
	// Output:
	// 2
}
