package util

import (
	"strings"
	"unicode/utf8"
)

// TruncateRunes 按字符截断，避免截断多字节字符
func TruncateRunes(s string, max int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:max]))
}
