package service

import "github.com/agnivade/levenshtein"

// editDistance — классическое расстояние Левенштейна по рунам.
func editDistance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// levenshteinSimilarity — (maxLen - distance) / maxLen в [0..1]; две пустые строки = 1.
func levenshteinSimilarity(a, b string) float64 {
	m := len([]rune(a))
	if mb := len([]rune(b)); mb > m {
		m = mb
	}
	if m == 0 {
		return 1
	}
	d := editDistance(a, b)
	return float64(m-d) / float64(m)
}
