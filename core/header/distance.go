package header

import "unicode/utf8"

// maxFuzzyDistance caps the number of edits accepted for any header.
const maxFuzzyDistance = 2

// MaxDistance returns the largest edit distance accepted against a normalized candidate:
// one edit from five characters, two from nine, never more. Candidates of four characters
// or fewer only match exactly, so short aliases such as "last" do not pick up "list".
func MaxDistance(candidate string) int {
	n := utf8.RuneCountInString(candidate)
	if n < 5 {
		return 0
	}
	return min((n-1)/4, maxFuzzyDistance)
}

// Distance returns the Levenshtein distance between a and b, counted in runes.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	ar, br := []rune(a), []rune(b)
	if len(ar) < len(br) {
		ar, br = br, ar
	}
	if len(br) == 0 {
		return len(ar)
	}

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}
	for i, ca := range ar {
		curr[0] = i + 1
		for j, cb := range br {
			sub := prev[j]
			if ca != cb {
				sub++
			}
			curr[j+1] = min(curr[j]+1, prev[j+1]+1, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(br)]
}
