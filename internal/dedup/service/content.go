package service

import (
	"regexp"
	"strings"
)

var rePunct = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

// contentSimilarity сравнивает начало извлечённых текстов (не более maxChars символов).
func contentSimilarity(a, b string, maxChars int) int {
	return percent(jaccardSets(contentTokens(a, maxChars), contentTokens(b, maxChars)))
}

func contentTokens(text string, maxChars int) map[string]struct{} {
	s := strings.ToLower(truncateRunes(text, maxChars))
	s = rePunct.ReplaceAllString(s, " ")
	return tokenSet(s, 3)
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
