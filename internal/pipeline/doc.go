// Package pipeline implements the engine that threads a Pipe through the
// fixed IMPORTING -> MERGING -> VALIDATION -> WRITING stage sequence.
//
// Filters come in three shapes, mirroring the "deep inheritance becomes a
// tagged variant" treatment of the original Filter/Pipe/TableSchema class
// hierarchy: SourceFilter (writes an output Pipe only), TransformFilter
// (reads one Pipe, writes another), and SinkFilter (reads an input Pipe,
// writes externally). The engine dispatches on whichever one a registered
// filter implements.
package pipeline
