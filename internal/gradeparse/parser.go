// Package gradeparse implements the pure string-to-grade parser: turning a
// Saxon climbing-grade label ("! * VIIIb (VIIIc) RP IXa") or a teufelsturm
// rating label ("+++ (Herausragend)") into the numeric fields Route and
// Post store.
package gradeparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nicowilhelm/routedb/internal/entity"
)

// SaxonGrade is the parsed form of a grade label, ready to apply to a Route
// via entity.Route.ApplyTuple.
type SaxonGrade = entity.GradeTuple

// saxonGradeRegex matches a Saxon grade label after whitespace has been
// stripped. Groups: d=danger mark, s=stars, j1=jump-only, j2/af1=jump+af
// pair, af2=af-only, ou=parenthesized ou grade, rp=RP-prefixed rp grade.
var saxonGradeRegex = regexp.MustCompile(
	`^(?P<d>!)?(?P<s>\*{0,2})` +
		`(?:(?P<j1>[1-6])|(?P<j2>[1-6])/(?P<af1>[IVX]+[abc]?)|(?P<af2>[IVX]+[abc]?))?` +
		`(?:\((?P<ou>[IVX]+[abc]?)\))?` +
		`(?:RP(?P<rp>[IVX]+[abc]?))?$`,
)

// saxonScale maps a roman-numeral-plus-letter grade label to its ordinal
// value. The empty string (group did not participate in the match) maps to
// 0, the entity.NoGrade sentinel.
var saxonScale = map[string]int{
	"":      entity.NoGrade,
	"I":     1,
	"II":    2,
	"III":   3,
	"IV":    4,
	"V":     5,
	"VI":    6,
	"VIIa":  7,
	"VIIb":  8,
	"VIIc":  9,
	"VIIIa": 10,
	"VIIIb": 11,
	"VIIIc": 12,
	"IXa":   13,
	"IXb":   14,
	"IXc":   15,
	"Xa":    16,
	"Xb":    17,
	"Xc":    18,
	"XIa":   19,
	"XIb":   20,
	"XIc":   21,
	"XIIa":  22,
	"XIIb":  23,
	"XIIc":  24,
}

// Parse parses a Saxon grade label into its component grades. It returns a
// *ValueParseError (wrapping ErrValueParse) if label does not match the
// expected grammar.
func Parse(label string) (SaxonGrade, error) {
	stripped := strings.ReplaceAll(label, " ", "")

	match := saxonGradeRegex.FindStringSubmatch(stripped)
	if match == nil {
		return SaxonGrade{}, &ValueParseError{Kind: "climbing grade", Value: label}
	}

	group := func(name string) string {
		return match[saxonGradeRegex.SubexpIndex(name)]
	}

	af := group("af1")
	if af == "" {
		af = group("af2")
	}
	jump := group("j1")
	if jump == "" {
		jump = group("j2")
	}

	afGrade, ok := saxonScale[af]
	if !ok {
		return SaxonGrade{}, &ValueParseError{Kind: "climbing grade", Value: label}
	}
	ouGrade, ok := saxonScale[group("ou")]
	if !ok {
		return SaxonGrade{}, &ValueParseError{Kind: "climbing grade", Value: label}
	}
	rpGrade, ok := saxonScale[group("rp")]
	if !ok {
		return SaxonGrade{}, &ValueParseError{Kind: "climbing grade", Value: label}
	}

	jumpGrade := 0
	if jump != "" {
		jumpGrade, _ = strconv.Atoi(jump)
	}

	return SaxonGrade{
		AF:        afGrade,
		OU:        ouGrade,
		RP:        rpGrade,
		Jump:      jumpGrade,
		Dangerous: group("d") != "",
		StarCount: len(group("s")),
	}, nil
}

// ratingLabels maps a teufelsturm post rating label to its numeric rating.
// A label not present in the map (including the neutral "(Normal)") parses
// to 0 — this mirrors the source site's own dict-with-default lookup and is
// not an error condition.
var ratingLabels = map[string]int{
	"--- (Kamikaze)":     -3,
	"-- (sehr schlecht)": -2,
	"- (schlecht)":       -1,
	"+ (gut)":            1,
	"++ (sehr gut)":      2,
	"+++ (Herausragend)": 3,
}

// ParseRating parses a teufelsturm post rating label into Post.Rating's
// range, [entity.MinRating, entity.MaxRating]. Unrecognized labels
// (including the neutral "(Normal)") yield 0.
func ParseRating(label string) int {
	return ratingLabels[label]
}
