// Package validate implements the VALIDATION-stage filter: a coarse-grained
// fix-or-drop policy over the merged entity set. A summit whose own data, or
// any of its routes' data, cannot be locally repaired is dropped in its
// entirety, since the relational sink requires every route to reference an
// existing summit and every post to reference an existing route.
package validate
