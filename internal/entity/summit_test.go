package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummit_NamePriority(t *testing.T) {
	s := NewSummit()
	s.AddUnspecifiedName("Name1")
	assert.Equal(t, "Name1", s.Name())

	s.AddAlternateName("Alt1")
	assert.Equal(t, "Alt1", s.Name(), "alternate beats unspecified")

	s.OfficialName = "Official1"
	assert.Equal(t, "Official1", s.Name(), "official beats alternate")
}

func TestSummit_AlternateNameRejectsOfficialDuplicate(t *testing.T) {
	s := NewSummit()
	s.OfficialName = "Falkenturm"
	s.AddAlternateName("Falkenturm")
	assert.Empty(t, s.AlternateNames())
}

func TestSummit_AlternateNameRejectsDuplicates(t *testing.T) {
	s := NewSummit()
	s.AddAlternateName("Beispielturm")
	s.AddAlternateName("Beispielturm")
	assert.Equal(t, []string{"Beispielturm"}, s.AlternateNames())
}

func TestSummit_PossibleIdentifiers(t *testing.T) {
	s := NewSummit()
	s.OfficialName = "Name1"
	s.AddAlternateName("Name2")
	s.AddUnspecifiedName("name1") // same normalized identity as OfficialName

	ids := s.PossibleIdentifiers()
	assert.Len(t, ids, 2)
	assert.Contains(t, ids, NewNormalizedName("Name1"))
	assert.Contains(t, ids, NewNormalizedName("Name2"))
}

func TestSummit_FixInvalidData(t *testing.T) {
	s := NewSummit()
	err := s.FixInvalidData()
	var incomplete *IncompleteDataError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, "summit", incomplete.Entity)

	s.OfficialName = "  Falkenturm  "
	require.NoError(t, s.FixInvalidData())
	assert.Equal(t, "Falkenturm", s.OfficialName)
}
