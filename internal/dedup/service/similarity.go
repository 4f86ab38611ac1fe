package service

import "math"

// jaccard — |A∩B| / |A∪B| по словам длиннее 2 символов; пустое объединение = 0.
func jaccard(a, b string) float64 {
	return jaccardSets(tokenSet(a, 2), tokenSet(b, 2))
}

func jaccardSets(sa, sb map[string]struct{}) float64 {
	union := len(sa)
	inter := 0
	for t := range sb {
		if _, ok := sa[t]; ok {
			inter++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// nameSimilarity: словарное пересечение (устойчиво к порядку слов) весит
// больше посимвольной близости (устойчива к опечаткам). Веса — в Policy.
func nameSimilarity(a, b string, p Policy) int {
	ca := normalizeFilename(a)
	cb := normalizeFilename(b)
	s := p.JaccardWeight*jaccard(ca, cb) + p.LevenshteinWeight*levenshteinSimilarity(ca, cb)
	return percent(s)
}

// percent переводит долю [0..1] в целые проценты.
func percent(f float64) int {
	return int(math.Round(100 * f))
}
