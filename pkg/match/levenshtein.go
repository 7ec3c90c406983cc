package match

import "strings"

// Levenshtein returns the classic edit distance between a and b, comparing
// case-insensitively. Substitution, insertion and deletion each cost 1.
func Levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Similarity converts edit distance into a [0,1] score: 1 minus the distance
// over the longer string's length, plus 0.1 per matching leading character
// (up to the shorter length), capped at 1.0.
func Similarity(a, b string) float64 {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	if la == lb {
		return 1.0
	}

	ra := []rune(la)
	rb := []rune(lb)
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	if longer == 0 {
		return 1.0
	}

	sim := 1.0 - float64(Levenshtein(la, lb))/float64(longer)

	shorter := len(ra)
	if len(rb) < shorter {
		shorter = len(rb)
	}
	for i := 0; i < shorter; i++ {
		if ra[i] != rb[i] {
			break
		}
		sim += 0.1
	}

	if sim > 1.0 {
		sim = 1.0
	}
	return sim
}

func minInt(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
