package gradeparse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AllAFGrades(t *testing.T) {
	for label, want := range saxonScale {
		if label == "" {
			continue
		}
		got, err := Parse(label)
		require.NoError(t, err, label)
		assert.Equal(t, SaxonGrade{AF: want}, got, label)
	}
}

func TestParse_OUAndRPAndJump(t *testing.T) {
	got, err := Parse("(IXb)")
	require.NoError(t, err)
	assert.Equal(t, SaxonGrade{OU: 14}, got)

	got, err = Parse("RP IXc")
	require.NoError(t, err)
	assert.Equal(t, SaxonGrade{RP: 15}, got)

	got, err = Parse("3")
	require.NoError(t, err)
	assert.Equal(t, SaxonGrade{Jump: 3}, got)
}

func TestParse_StarsAndDanger(t *testing.T) {
	got, err := Parse("! * III")
	require.NoError(t, err)
	assert.Equal(t, SaxonGrade{Dangerous: true, StarCount: 1, AF: 3}, got)

	got, err = Parse("** IV")
	require.NoError(t, err)
	assert.Equal(t, SaxonGrade{StarCount: 2, AF: 4}, got)
}

func TestParse_RealWorldCombinations(t *testing.T) {
	cases := []struct {
		label string
		want  SaxonGrade
	}{
		{"** IXa (IXb) RP IXc", SaxonGrade{StarCount: 2, AF: 13, OU: 14, RP: 15}},
		{"! * VIIIb (VIIIc) RP IXa", SaxonGrade{Dangerous: true, StarCount: 1, AF: 11, OU: 12, RP: 13}},
		{"VI RP VIIa", SaxonGrade{AF: 6, RP: 7}},
		{"V (VI)", SaxonGrade{AF: 5, OU: 6}},
		{"(IXc) RP Xa", SaxonGrade{OU: 15, RP: 16}},
		{"3/VI", SaxonGrade{AF: 6, Jump: 3}},
		{"1/VI (VIIa)", SaxonGrade{AF: 6, OU: 7, Jump: 1}},
		{"2/IXb RP IXc", SaxonGrade{AF: 14, RP: 15, Jump: 2}},
		{"! * 2/VIIb", SaxonGrade{Dangerous: true, StarCount: 1, AF: 8, Jump: 2}},
		{"!**3/VIIIa(VIIIb)RPVIIIc", SaxonGrade{Dangerous: true, StarCount: 2, AF: 10, OU: 11, RP: 12, Jump: 3}},
	}
	for _, c := range cases {
		got, err := Parse(c.label)
		require.NoError(t, err, c.label)
		assert.Equal(t, c.want, got, c.label)
	}
}

func TestParse_InvalidLabelReturnsValueParseError(t *testing.T) {
	_, err := Parse("not a grade")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValueParse))

	var pe *ValueParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "climbing grade", pe.Kind)
}

func TestParseRating_AllSevenScenario8Labels(t *testing.T) {
	cases := map[string]int{
		"--- (Kamikaze)":     -3,
		"-- (sehr schlecht)": -2,
		"- (schlecht)":       -1,
		"(Normal)":           0,
		"+ (gut)":            1,
		"++ (sehr gut)":      2,
		"+++ (Herausragend)": 3,
	}
	for label, want := range cases {
		assert.Equal(t, want, ParseRating(label), label)
	}
}
