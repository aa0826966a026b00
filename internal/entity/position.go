package entity

import (
	"fmt"
	"math"
)

// coordinatePrecision is the fixed-point scale factor applied to decimal-degree
// coordinates, matching the OSM convention of 10^7 (about 1 cm precision).
const coordinatePrecision = 10_000_000

// earthRadiusMeters is the mean Earth radius used by the haversine calculation.
const earthRadiusMeters = 6_371_000.0

// Position is a fixed-point geographic coordinate. Latitude and longitude are
// stored as signed 32-bit integers scaled by 10^7, avoiding floating-point
// equality hazards when comparing positions observed from different sources.
type Position struct {
	LatitudeE7  int32
	LongitudeE7 int32
}

// Undefined is the reserved "absent" position (Null-Object pattern). It denotes
// a point lying in open ocean, so it is always safe to treat it as "no
// climbing-relevant position known" rather than a real coordinate.
var Undefined = Position{}

// NewPosition constructs a Position from already-scaled integer coordinates. It
// returns an error if the values fall outside valid latitude/longitude ranges.
func NewPosition(latitudeE7, longitudeE7 int32) (Position, error) {
	if abs32(latitudeE7) > 90*coordinatePrecision {
		return Position{}, fmt.Errorf("entity: latitude %d out of range [-90, 90] degrees", latitudeE7)
	}
	if abs32(longitudeE7) > 180*coordinatePrecision {
		return Position{}, fmt.Errorf("entity: longitude %d out of range [-180, 180] degrees", longitudeE7)
	}
	return Position{LatitudeE7: latitudeE7, LongitudeE7: longitudeE7}, nil
}

// FromDecimalDegrees constructs a Position from decimal-degree float values.
func FromDecimalDegrees(latitude, longitude float64) (Position, error) {
	return NewPosition(
		int32(math.Round(latitude*coordinatePrecision)),
		int32(math.Round(longitude*coordinatePrecision)),
	)
}

// LatitudeDecimalDegrees returns the latitude as a decimal-degree float.
func (p Position) LatitudeDecimalDegrees() float64 {
	return float64(p.LatitudeE7) / coordinatePrecision
}

// LongitudeDecimalDegrees returns the longitude as a decimal-degree float.
func (p Position) LongitudeDecimalDegrees() float64 {
	return float64(p.LongitudeE7) / coordinatePrecision
}

// IsUndefined reports whether p is the sentinel Undefined position.
func (p Position) IsUndefined() bool {
	return p == Undefined
}

// WithinRadius reports whether p and other are within the given radius in
// meters, using the haversine formula on the decimal-degree reconstructions.
// It is reflexive (WithinRadius(p, p, 0) is true) and symmetric.
func (p Position) WithinRadius(other Position, meters float64) bool {
	if p == other {
		return true
	}
	lat1 := degToRad(p.LatitudeDecimalDegrees())
	lat2 := degToRad(other.LatitudeDecimalDegrees())
	dLat := lat2 - lat1
	dLon := degToRad(other.LongitudeDecimalDegrees() - p.LongitudeDecimalDegrees())

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters*c <= meters
}

// String renders the position in a human-readable hemisphere-qualified form.
func (p Position) String() string {
	latHemi, lonHemi := "N", "E"
	if p.LatitudeE7 < 0 {
		latHemi = "S"
	}
	if p.LongitudeE7 < 0 {
		lonHemi = "W"
	}
	return fmt.Sprintf("%.7f°%s %.7f°%s",
		math.Abs(p.LatitudeDecimalDegrees()), latHemi,
		math.Abs(p.LongitudeDecimalDegrees()), lonHemi)
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
