package asciidoc

import (
	"strings"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
)

// SplitSections splits body text into the sections introduced by heading
// markers of exactly the given level (2 for "== ", 3 for "=== ", ...).
//
// Splitting occurs only at line-start markers of the target length followed
// by whitespace. Deeper and shallower markers are not boundaries at this
// call: they remain embedded verbatim in the returned sections' bodies, so
// depth-limited flattening is a pure text-range operation. Each section's
// body runs from just after its heading line to just before the next
// sibling heading, with surrounding blank lines trimmed.
//
// The returned preamble is the text before the first boundary, or the whole
// input when no boundary exists.
func SplitSections(body string, level int) (sections []domain.Section, preamble string) {
	lines := strings.Split(body, "\n")

	var current *domain.Section
	var buf []string

	flush := func() {
		text := strings.Trim(strings.Join(buf, "\n"), "\n")
		if current == nil {
			preamble = text
		} else {
			current.Body = text
			sections = append(sections, *current)
		}
		buf = buf[:0]
	}

	for _, line := range lines {
		if title, ok := parseHeadingLine(line, level); ok {
			flush()
			current = &domain.Section{Level: level, Title: title}
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return sections, preamble
}

// Outline builds the full section tree of a document body down to maxLevel,
// extracting each section's own metadata along the way. The compiler does
// not use Outline for event emission (it recurses over raw ranges so depth
// limiting stays textual); Outline serves display surfaces that want the
// hierarchy in one piece.
func Outline(body string, maxLevel int) []domain.Section {
	return outline(body, 2, maxLevel)
}

func outline(body string, level, maxLevel int) []domain.Section {
	if level > maxLevel {
		return nil
	}

	sections, _ := SplitSections(body, level)
	for i := range sections {
		meta, rest := ExtractSection(sections[i].Title, sections[i].Body)
		sections[i].Meta = meta
		sections[i].Children = outline(rest, level+1, maxLevel)
	}
	return sections
}
