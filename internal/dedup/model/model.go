package model

import (
	"strings"
	"time"
)

// MatchType explains why an existing document was reported.
type MatchType string

const (
	MatchExact          MatchType = "exact"
	MatchSimilarName    MatchType = "similar_name"
	MatchSimilarContent MatchType = "similar_content"
	MatchVersion        MatchType = "version"
)

// Recommendation is the suggested action for the caller.
type Recommendation string

const (
	Overwrite Recommendation = "overwrite"
	KeepBoth  Recommendation = "keep_both"
	Merge     Recommendation = "merge"
	Skip      Recommendation = "skip"
)

// UploadCandidate is the incoming file under evaluation.
type UploadCandidate struct {
	Name          string  // исходное имя файла
	SizeBytes     uint64  // размер в байтах
	ExtractedText *string // уже извлечённый текст, nil если нет
}

// Text returns the extracted text and whether it is usable.
func (c UploadCandidate) Text() (string, bool) { return optionalText(c.ExtractedText) }

// ExistingDocument is a completed upload already attached to a project.
type ExistingDocument struct {
	ID            string
	StoredName    string
	OriginalName  string
	SizeBytes     uint64
	UploadedAt    time.Time
	ExtractedText *string
}

// Text returns the extracted text and whether it is usable.
func (d ExistingDocument) Text() (string, bool) { return optionalText(d.ExtractedText) }

// DisplayName is the name used for comparison and display.
func (d ExistingDocument) DisplayName() string {
	if strings.TrimSpace(d.OriginalName) != "" {
		return d.OriginalName
	}
	return d.StoredName
}

type DuplicateMatch struct {
	DocumentID   string    `json:"documentId"`
	StoredName   string    `json:"storedName"`
	OriginalName string    `json:"originalName"`
	Similarity   int       `json:"similarity"` // 0..100
	MatchType    MatchType `json:"matchType"`
	UploadedAt   time.Time `json:"uploadedAt"`
	SizeBytes    uint64    `json:"sizeBytes"`
}

type DetectionResult struct {
	IsDuplicate    bool             `json:"isDuplicate"`
	Confidence     int              `json:"confidence"`
	Matches        []DuplicateMatch `json:"matches"`
	Recommendation Recommendation   `json:"recommendation"`
}

// NoDuplicate is the result for an empty project or an unreachable store.
func NoDuplicate() DetectionResult {
	return DetectionResult{
		Matches:        []DuplicateMatch{},
		Recommendation: KeepBoth,
	}
}

// Text wraps s for the optional ExtractedText fields.
func Text(s string) *string { return &s }

func optionalText(p *string) (string, bool) {
	if p == nil || strings.TrimSpace(*p) == "" {
		return "", false
	}
	return *p, true
}
