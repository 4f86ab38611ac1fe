package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var rxKeepDigits = regexp.MustCompile(`[^\d]`)

// ParseSize парсит размер файла в байтах: "1048576", "1 048 576", в т.ч. с NBSP/NNBSP.
// Отрицательные и дробные значения не принимаются.
func ParseSize(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "-.,") {
		return 0, false
	}
	// убрать неразрывные/узкие пробелы и обычные пробелы
	repl := strings.NewReplacer("\u00A0", "", "\u202F", "", " ", "", "\t", "", "_", "")
	s = repl.Replace(s)
	if rxKeepDigits.MatchString(s) || s == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
