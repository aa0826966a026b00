// Package entity defines the core data types that flow through the pipeline —
// Position, NormalizedName, Summit, Route, and Post — along with the identity
// and value-comparison rules the merger and validator depend on.
//
// Entities are created by source filters, inserted into a pipe.Pipe, possibly
// enriched in place during the MERGE stage, repaired in place by
// FixInvalidData during the VALIDATION stage, and treated read-only by the
// WRITE stage.
package entity
