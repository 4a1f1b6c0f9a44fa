package domain

// Section is a node in a document's heading tree.
//
// Body holds the text belonging directly to this section, from just after
// its own heading line to just before the next sibling heading. When
// depth-flattening applies, Body contains the verbatim markup of deeper
// sections, heading markers included: flattening is a textual operation
// over raw text ranges, not a structural one.
type Section struct {
	// Level is the heading level: a "== " marker is level 2, "=== " is 3.
	Level int

	// Title is the heading text with the marker stripped.
	Title string

	// Meta is the section's own extracted metadata. Populated by outline
	// construction; the splitter leaves it zero.
	Meta Metadata

	// Body is the raw text range belonging to this section.
	Body string

	// Children are the direct sub-sections in document order. Populated
	// by outline construction; the splitter leaves it nil.
	Children []Section
}

// ValidationResult is the outcome of the pre-flight structure check.
// A failure is a value, never an error: the caller can always recover,
// e.g. by prompting the author to add a title.
type ValidationResult struct {
	// Valid reports whether the document is compilable.
	Valid bool

	// Reason names the missing requirement when Valid is false.
	Reason string
}
