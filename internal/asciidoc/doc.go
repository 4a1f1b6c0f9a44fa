// Package asciidoc parses the outline-style document format consumed by the
// compiler: "="/"=="/"===" heading markers, an optional author/revision
// header, and ":key: value" attribute lines.
//
// The package operates on raw text ranges, never an AST. Section splitting
// returns verbatim slices of the input so that structure deeper than the
// configured parse depth survives flattening byte for byte.
package asciidoc
