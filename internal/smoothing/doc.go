// Package smoothing rewrites the interior colors of a sequence so that
// runs between locked anchors transition smoothly.
//
// The engine is a pure function pipeline: a color sequence and a set of
// locked indices are partitioned into segments bounded by anchors (locked
// indices plus the implicit first and last index), each segment's interior
// is re-interpolated under the selected algorithm, and the result is
// blended against the original sequence by a strength factor in [0,1].
//
// Anchors are never rewritten: for any algorithm and strength, locked
// positions and the sequence endpoints come back byte-identical to the
// input. Degenerate inputs (fewer than two colors, every index locked,
// an unrecognized algorithm) pass through unchanged.
//
// All functions are stateless and safe for concurrent use.
package smoothing
