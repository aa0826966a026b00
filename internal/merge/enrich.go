package merge

import "github.com/nicowilhelm/routedb/internal/entity"

// enrichSummit folds src into dst in place, applying the summit enrichment
// rules. dst survives; src is discarded by the caller after this returns.
func enrichSummit(dst, src *entity.Summit) error {
	name := dst.Name()
	if name == "" {
		name = src.Name()
	}

	switch {
	case dst.OfficialName == "":
		dst.SetOfficialName(src.OfficialName)
	case src.OfficialName != "" && entity.NewNormalizedName(dst.OfficialName) != entity.NewNormalizedName(src.OfficialName):
		return &ConflictError{EntityType: "summit", Name: name, Attribute: "official name"}
	}

	for _, alt := range src.AlternateNames() {
		dst.AddAlternateName(alt)
	}
	for _, unspecified := range src.UnspecifiedNames() {
		dst.AddUnspecifiedName(unspecified)
	}

	if err := enrichPosition(&dst.HighGradePosition, src.HighGradePosition, name); err != nil {
		return err
	}
	return enrichPosition(&dst.LowGradePosition, src.LowGradePosition, name)
}

func enrichPosition(dst *entity.Position, src entity.Position, summitName string) error {
	switch {
	case dst.IsUndefined():
		*dst = src
	case !src.IsUndefined() && *dst != src:
		return &ConflictError{EntityType: "summit", Name: summitName, Attribute: "position"}
	}
	return nil
}

// enrichRoute folds src's grade tuple into dst in place, applying the route
// enrichment rules. Posts are concatenated by the caller, not here.
func enrichRoute(dst, src *entity.Route) error {
	dstTuple, srcTuple := dst.Tuple(), src.Tuple()

	switch {
	case dstTuple.IsMissing():
		dst.ApplyTuple(srcTuple)
		dst.Grade = src.Grade
	case srcTuple.IsMissing() || srcTuple == dstTuple:
		// keep incumbent
	default:
		return &ConflictError{EntityType: "route", Name: dst.RouteName, Attribute: "grade"}
	}
	return nil
}
