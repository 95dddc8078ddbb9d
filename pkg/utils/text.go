package utils

import (
	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/width"
)

// Transliterate rewrites text as its closest ASCII spelling. Full-width forms
// are narrowed first, then every remaining rune goes through the unidecode
// tables, so "straße" becomes "strasse" and "北亰" becomes "Bei Jing ".
func Transliterate(text string) string {
	if text == "" {
		return ""
	}
	return unidecode.Unidecode(width.Fold.String(text))
}
