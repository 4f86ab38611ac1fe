package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"My_Thesis-Final v2 (copy) 2023.PDF", "my thesis final"},
		{"Report Version 3.doc", "report"},
		{"rev2_summary.xlsx", "summary"},
		{"thesisV2.pdf", "thesis"},
		{"draft(3)Rev4.docx", "draft"},
		{"image.jpeg", "image"},
		{"notes.TXT", "notes"},
		{"data.csv", "data.csv"},
		{"  ", ""},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, normalizeFilename(c.in), c.in)
	}
}

func TestExactKey(t *testing.T) {
	assert.Equal(t, exactKey(" Thesis.PDF"), exactKey("thesis.pdf"))
	assert.NotEqual(t, exactKey("thesis.pdf"), exactKey("thesis.docx"))
}
