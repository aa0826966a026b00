package entity

import "strings"

// Summit is a single physical rock or mountain that can be climbed. There are
// usually several Routes leading to its top.
//
// A Summit carries three name fields because observations from different
// sources disagree about which name is "official": at least one of the three
// must be non-empty, and OfficialName is never duplicated inside
// AlternateNames.
type Summit struct {
	// OfficialName is the canonical display name, or "" if none is known yet.
	OfficialName string

	alternateNames   *orderedStringSet
	unspecifiedNames *orderedStringSet

	// HighGradePosition and LowGradePosition are the geographic coordinates of
	// the summit's top and base climbing points, respectively. Undefined until
	// a source observation supplies a real value.
	HighGradePosition Position
	LowGradePosition  Position
}

// NewSummit creates an empty Summit with initialized name sets.
func NewSummit() *Summit {
	return &Summit{
		alternateNames:   newOrderedStringSet(),
		unspecifiedNames: newOrderedStringSet(),
	}
}

// AlternateNames returns the alternate names in insertion order.
func (s *Summit) AlternateNames() []string {
	return s.alternateNames.Values()
}

// UnspecifiedNames returns the unspecified names in insertion order.
func (s *Summit) UnspecifiedNames() []string {
	return s.unspecifiedNames.Values()
}

// SetOfficialName sets OfficialName, removing any existing alternate-name
// entry that now duplicates it.
func (s *Summit) SetOfficialName(name string) {
	s.OfficialName = name
	if name != "" {
		s.alternateNames.Remove(name)
	}
}

// AddAlternateName inserts name into the alternate-name set, rejecting it if
// it duplicates an existing entry or the official name.
func (s *Summit) AddAlternateName(name string) {
	if name == "" || name == s.OfficialName {
		return
	}
	s.alternateNames.Add(name)
}

// AddUnspecifiedName inserts name into the unspecified-name set, rejecting
// duplicates.
func (s *Summit) AddUnspecifiedName(name string) {
	if name == "" {
		return
	}
	s.unspecifiedNames.Add(name)
}

// Name returns the best available display name: official, else the first
// alternate, else the first unspecified name, else "".
func (s *Summit) Name() string {
	if s.OfficialName != "" {
		return s.OfficialName
	}
	if alternates := s.alternateNames.Values(); len(alternates) > 0 {
		return alternates[0]
	}
	if unspecified := s.unspecifiedNames.Values(); len(unspecified) > 0 {
		return unspecified[0]
	}
	return ""
}

// PossibleIdentifiers returns the NormalizedName of every stored name across
// all three name fields, deduplicated but in no particular order. Used by the
// merger's matching predicate.
func (s *Summit) PossibleIdentifiers() []NormalizedName {
	seen := make(map[NormalizedName]struct{})
	var result []NormalizedName

	add := func(name string) {
		if name == "" {
			return
		}
		n := NewNormalizedName(name)
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}

	add(s.OfficialName)
	for _, n := range s.alternateNames.Values() {
		add(n)
	}
	for _, n := range s.unspecifiedNames.Values() {
		add(n)
	}

	return result
}

// RepresentativePosition returns HighGradePosition if it is defined,
// otherwise LowGradePosition. The merger uses this single position per
// summit when testing position compatibility between two observations.
func (s *Summit) RepresentativePosition() Position {
	if !s.HighGradePosition.IsUndefined() {
		return s.HighGradePosition
	}
	return s.LowGradePosition
}

// FixInvalidData attempts a local repair: trimming incidental whitespace from
// OfficialName. It raises IncompleteDataError if, after that fixup, no name
// field is non-empty.
func (s *Summit) FixInvalidData() error {
	s.OfficialName = strings.TrimSpace(s.OfficialName)

	if s.Name() == "" {
		return &IncompleteDataError{Entity: "summit", MissingAttribute: "name"}
	}
	return nil
}
