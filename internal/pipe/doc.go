// Package pipe implements the Pipe entity store that is handed from one
// pipeline stage to the next. Summits, routes, and posts are addressed by
// opaque SummitID/RouteID handles rather than pointers between entities, so a
// Pipe can be serialized, copied, or dropped wholesale without having to walk
// a graph of cross-references.
package pipe
