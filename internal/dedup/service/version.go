package service

import (
	"regexp"
	"strings"
)

// Маркеры ревизий вместе с окружающими пробелами (после замены _ и - на пробел).
// Цифровые маркеры ищутся и внутри слова (thesisV2), final/draft — только целым словом.
var reVersionMarker = regexp.MustCompile(`(?i)\s*(?:v\d+|version\s*\d+|rev\s*\d+|\(\d+\)|\b(?:final|draft)\b)\s*`)

// VersionMatch — результат сравнения двух имён как ревизий одного документа.
type VersionMatch struct {
	IsVersion  bool
	Confidence int // 0..100, 0 если не версия
}

func splitSeparators(name string) string {
	return strings.NewReplacer("_", " ", "-", " ").Replace(name)
}

// versionBase срезает маркеры ревизии и сообщает, был ли хоть один.
func versionBase(name string) (string, bool) {
	s := splitSeparators(name)
	found := reVersionMarker.MatchString(s)
	s = reVersionMarker.ReplaceAllString(s, " ")
	return normalizeFilename(s), found
}

// detectVersion: база имён почти совпадает и хотя бы у одного есть маркер ревизии.
func detectVersion(a, b string, p Policy) VersionMatch {
	baseA, markA := versionBase(a)
	baseB, markB := versionBase(b)
	if !markA && !markB {
		return VersionMatch{}
	}
	sim := jaccard(baseA, baseB)
	if sim <= p.VersionBaseThreshold {
		return VersionMatch{}
	}
	return VersionMatch{IsVersion: true, Confidence: percent(sim)}
}
