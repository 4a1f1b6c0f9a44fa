package asciidoc

import (
	"regexp"
	"strings"
)

// attrLineRe matches ":key: value" attribute lines.
var attrLineRe = regexp.MustCompile(`^:([A-Za-z0-9_][A-Za-z0-9_.\-]*):[ \t]*(.*)$`)

// authorLineRe matches the author-line shape: one or more personal names,
// comma or semicolon delimited, each optionally followed by <email>.
// The shape is intentionally narrow so that body prose is never consumed
// as an author: each name must start with an uppercase letter and run to
// at most four words with no sentence punctuation.
var authorLineRe = regexp.MustCompile(
	`^` + namePattern + emailPattern +
		`(?:[ \t]*[,;][ \t]*` + namePattern + emailPattern + `)*[ \t]*$`,
)

const (
	namePattern  = `[A-Z][A-Za-z.'\-]*(?:[ \t]+[A-Za-z][A-Za-z.'\-]*){0,3}`
	emailPattern = `(?:[ \t]+<[^<>@\s]+@[^<>\s]+>)?`
)

// revisionVersionRe anchors revision-line recognition: the first field must
// look like a version ("v1.0", "2.3.1", "7"), otherwise the line is body text.
var revisionVersionRe = regexp.MustCompile(`^v?\d[0-9A-Za-z.\-+]*$`)

// parseTitleLine recognises a document title marker: a single "=" followed
// by whitespace and the title text.
func parseTitleLine(line string) (string, bool) {
	if !strings.HasPrefix(line, "= ") && !strings.HasPrefix(line, "=\t") {
		return "", false
	}
	title := strings.TrimSpace(line[2:])
	if title == "" {
		return "", false
	}
	return title, true
}

// parseHeadingLine recognises a section marker of exactly the given level:
// level "=" runes followed by whitespace and the heading text. Markers of a
// different length are not recognised at this call.
func parseHeadingLine(line string, level int) (string, bool) {
	if level < 2 {
		return "", false
	}
	marker := strings.Repeat("=", level)
	if !strings.HasPrefix(line, marker) {
		return "", false
	}
	rest := line[level:]
	if strings.HasPrefix(rest, "=") {
		return "", false // deeper marker
	}
	if !strings.HasPrefix(rest, " ") && !strings.HasPrefix(rest, "\t") {
		return "", false
	}
	title := strings.TrimSpace(rest)
	if title == "" {
		return "", false
	}
	return title, true
}

// isAttrLine reports whether the line is a ":key: value" attribute line.
func isAttrLine(line string) bool {
	return attrLineRe.MatchString(line)
}

// isAuthorLine reports whether the line matches the narrow author-line shape.
// Attribute lines and heading lines never match.
func isAuthorLine(line string) bool {
	line = strings.TrimRight(line, " \t")
	if line == "" || isAttrLine(line) {
		return false
	}
	return authorLineRe.MatchString(line)
}

// splitAuthors splits an author line into trimmed names, dropping any
// <email> part. Names are comma or semicolon delimited.
func splitAuthors(line string) []string {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';'
	})

	var authors []string
	for _, part := range parts {
		name := stripEmail(strings.TrimSpace(part))
		if name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}

// stripEmail removes a trailing "<email>" from an author name.
func stripEmail(name string) string {
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// parseRevisionLine parses a revision line of the form
// "version, date, publisher" or "version, date: publisher".
// Missing trailing fields are left unset. A leading "v" on the version is
// dropped when followed by a digit.
func parseRevisionLine(line string) (version, date, publisher string, ok bool) {
	line = strings.TrimSpace(line)
	first, rest, _ := strings.Cut(line, ",")
	first = strings.TrimSpace(first)
	if !revisionVersionRe.MatchString(first) {
		return "", "", "", false
	}

	version = first
	if len(version) > 1 && version[0] == 'v' && version[1] >= '0' && version[1] <= '9' {
		version = version[1:]
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return version, "", "", true
	}

	if d, p, found := strings.Cut(rest, ":"); found {
		return version, strings.TrimSpace(d), strings.TrimSpace(p), true
	}
	d, p, _ := strings.Cut(rest, ",")
	return version, strings.TrimSpace(d), strings.TrimSpace(p), true
}

// splitCommaList splits a comma-separated attribute value into trimmed,
// non-empty entries, preserving order and duplicates.
func splitCommaList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
