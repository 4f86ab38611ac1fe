package service

import "strings"

// extractPaperTitle выделяет вероятное название статьи из очищенного имени:
// без годов и коротких токенов (инициалы, шум).
func extractPaperTitle(clean string) string {
	s := reYear.ReplaceAllString(clean, " ")
	s = reSeparators.ReplaceAllString(s, " ")
	kept := make([]string, 0, 8)
	for _, t := range strings.Fields(s) {
		if len([]rune(t)) > 3 {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, " ")
}

// titleSimilarity сравнивает названия; ok=false если хотя бы одно короче minLen.
func titleSimilarity(a, b string, p Policy) (int, bool) {
	ta := extractPaperTitle(normalizeFilename(a))
	tb := extractPaperTitle(normalizeFilename(b))
	if len([]rune(ta)) < p.TitleMinLength || len([]rune(tb)) < p.TitleMinLength {
		return 0, false
	}
	return percent(jaccard(ta, tb)), true
}
