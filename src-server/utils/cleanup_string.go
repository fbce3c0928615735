package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// strips spaces, collapses inner whitespace, uppercase first letter of each
// word, remove trailing period
func CleanupString(s string, tag language.Tag) string {
	s = strings.Join(strings.Fields(s), " ")
	s = cases.Title(tag, cases.NoLower).String(s)
	s = strings.TrimSuffix(s, ".")
	return s
}
