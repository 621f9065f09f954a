package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var dStroke = strings.NewReplacer("đ", "d", "Đ", "D")

// NormalizeSearch lowercases và bỏ dấu để so khớp tên
// "Nguyễn Văn Đức" → "nguyen van duc"
func NormalizeSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, dStroke.Replace(s))
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// MatchesSearch trả về true khi term rỗng hoặc là substring của ít nhất một field
func MatchesSearch(term string, fields ...string) bool {
	needle := NormalizeSearch(term)
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(NormalizeSearch(f), needle) {
			return true
		}
	}
	return false
}

// MatchesExact so khớp filter dạng categorical; "" và "all" nghĩa là không lọc
func MatchesExact(filter, value string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, "all") {
		return true
	}
	return filter == value
}
