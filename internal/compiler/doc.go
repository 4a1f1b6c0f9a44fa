// Package compiler turns a validated document into a tree of addressable
// publication events: one optional index event linking, through "a"
// reference tags, to branch and leaf events for the document's sections
// down to a caller-chosen parse depth.
//
// Compilation is a pure, synchronous computation: one Compile call fully
// consumes its input and returns a complete result or a validation failure,
// with no I/O and no state shared between calls. Concurrent calls on
// independent inputs need no coordination.
package compiler
