package service

import (
	"regexp"
	"sort"
	"strings"
)

// Известные расширения документов (срезаются только в конце имени)
var reExt = regexp.MustCompile(`(?i)\.(pdf|docx?|xlsx?|txt|png|jpe?g)$`)

// Разделители: подчёркивания, дефисы, пробелы → один пробел
var reSeparators = regexp.MustCompile(`[_\-\s]+`)

// Год: 1900–2099 отдельным токеном
var reYear = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// Маркеры версий: v2, version 3, rev 1; могут быть приклеены к слову (thesisv2)
var reVersionToken = regexp.MustCompile(`(?:v\d+|version\s*\d+|rev\s*\d+)`)

// Содержимое в скобках: "(1)", "(copy)"
var reParens = regexp.MustCompile(`\([^)]*\)`)

// === normalizeFilename — конвейер очистки имени для сравнения ===
func normalizeFilename(name string) string {
	if name == "" {
		return ""
	}
	out := strings.ToLower(strings.TrimSpace(name))

	// 1) расширение
	out = reExt.ReplaceAllString(out, "")

	// 2) разделители
	out = reSeparators.ReplaceAllString(out, " ")

	// 3) годы и версии
	out = reYear.ReplaceAllString(out, " ")
	out = reVersionToken.ReplaceAllString(out, " ")

	// 4) скобки
	out = reParens.ReplaceAllString(out, " ")

	return collapseSpaces(out)
}

// exactKey — ключ для правила «точное имя»: регистр и крайние пробелы не важны.
func exactKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ===== helpers =====

// Схлопывание пробелов
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Токены длиннее minLen символов как множество
func tokenSet(s string, minLen int) map[string]struct{} {
	m := make(map[string]struct{})
	for _, t := range strings.Fields(s) {
		if len([]rune(t)) > minLen {
			m[t] = struct{}{}
		}
	}
	return m
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
