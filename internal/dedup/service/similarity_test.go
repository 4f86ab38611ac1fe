package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccard(t *testing.T) {
	assert.Equal(t, 1.0, jaccard("machine learning survey", "survey of machine learning"))
	assert.InDelta(t, 1.0/3, jaccard("alpha beta", "alpha gamma"), 1e-9)
	assert.Equal(t, 0.0, jaccard("", ""))
	// токены из 1–2 символов не учитываются
	assert.Equal(t, 0.0, jaccard("ab cd", "ab cd"))
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 3, editDistance("kitten", "sitting"))
	assert.Equal(t, 2, editDistance("flaw", "lawn"))
	assert.Equal(t, 4, editDistance("", "тест"))
}

func TestLevenshteinSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, levenshteinSimilarity("", ""))
	assert.Equal(t, 0.0, levenshteinSimilarity("abc", ""))
	assert.InDelta(t, 4.0/7, levenshteinSimilarity("kitten", "sitting"), 1e-9)
	assert.Equal(t, 1.0, levenshteinSimilarity("отчёт", "отчёт"))
}

func TestNameSimilarity(t *testing.T) {
	p := DefaultPolicy()
	cases := []struct {
		a, b string
		want int
	}{
		{"thesis_draft.pdf", "thesis_final.pdf", 41},
		{"literature_review_chapter.pdf", "literature_review_chapter_copy.pdf", 77},
		{"climate_change_impacts_report.pdf", "climate_change_impact_report.pdf", 71},
		{"budget.xlsx", "holiday_photos.jpg", 4},
		{"report_2021.pdf", "Report-2022.docx", 100},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, nameSimilarity(c.a, c.b, p), "%s vs %s", c.a, c.b)
	}
}

func TestNameSimilarityUsesPolicyWeights(t *testing.T) {
	p := DefaultPolicy()
	p.JaccardWeight, p.LevenshteinWeight = 0, 1
	// "ab" vs "ab": jaccard 0 (короткие токены), levenshtein 1
	assert.Equal(t, 100, nameSimilarity("ab.pdf", "ab.docx", p))
	assert.Equal(t, 30, nameSimilarity("ab.pdf", "ab.docx", DefaultPolicy()))
}
