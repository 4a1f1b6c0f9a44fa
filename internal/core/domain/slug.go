package domain

import "strings"

// NormalizeSlug turns an arbitrary title into a URL/identifier-safe token.
// It lowercases the input, replaces any run of characters outside [a-z0-9]
// with a single hyphen, and trims leading and trailing hyphens.
//
// The function is total and idempotent, and never truncates: distinct titles
// differing only in punctuation may normalize to the same slug, which is
// accepted input behaviour. Disambiguation is handled by ancestor-path
// composition (see JoinSlug), not here.
func NormalizeSlug(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pending := false
	for _, r := range strings.ToLower(title) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}

	return b.String()
}

// JoinSlug composes an ancestor-path slug from a parent slug and a child's
// own title slug, e.g. "document-title" + "section-title" ->
// "document-title-section-title". Empty components are skipped.
func JoinSlug(parent, child string) string {
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "-" + child
}
