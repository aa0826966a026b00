package entity

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// stripNonPrintableASCII removes every rune outside the printable ASCII range.
// This deliberately discards accented glyphs rather than transliterating them:
// "Müller" and "Mller" must collide, matching the upstream site's own identity
// scheme that this derived name replaces.
var stripNonPrintableASCII = runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII || !unicode.IsPrint(r)
}))

// NormalizedName is a derived string identity used to equate name variants of
// the same physical summit. Two different surface names may normalize to the
// same value; this is used by the merger's matching predicate.
type NormalizedName string

// NewNormalizedName derives the normalized form of raw following, in order:
// lowercasing, stripping non-printable-ASCII characters, replacing punctuation
// with spaces, then splitting on whitespace, sorting the segments, and
// rejoining them with underscores. The result is idempotent:
// NewNormalizedName(string(NewNormalizedName(x))) == NewNormalizedName(x).
func NewNormalizedName(raw string) NormalizedName {
	lowered := strings.ToLower(raw)

	stripped, _, err := transform.String(stripNonPrintableASCII, lowered)
	if err != nil {
		stripped = lowered
	}

	despunctuated := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return ' '
		}
		return r
	}, stripped)

	segments := strings.Fields(despunctuated)
	sort.Strings(segments)

	return NormalizedName(strings.Join(segments, "_"))
}

// String returns the derived string form.
func (n NormalizedName) String() string {
	return string(n)
}
