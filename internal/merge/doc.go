// Package merge implements the MERGING-stage filter: it consolidates summit
// and route observations coming from possibly multiple source filters into a
// single canonical set, re-scanning that set every time a newly discovered
// name could collapse several previously independent entries into one.
package merge
