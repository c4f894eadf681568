// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package markdown

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separator replaces every run of characters that are not letters or digits.
const Separator = "-"

// Slug lower-cases title, strips diacritics and replaces each run of
// non-alphanumeric characters with Separator. Leading and trailing
// separators are dropped. A title with no letters or digits yields "_".
func Slug(title string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}
	folded = cases.Lower(language.Und).String(folded)

	var sb strings.Builder
	pending := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && sb.Len() > 0 {
				sb.WriteString(Separator)
			}
			pending = false
			sb.WriteRune(r)
			continue
		}
		pending = true
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}

// Filename derives the output file name for a document title.
func Filename(title, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = "md"
	}
	return Slug(title) + "." + ext
}
