package asciidoc

import (
	"strings"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
)

// DocClass classifies a whole document for the compiler's top-level branching.
type DocClass int

const (
	// ClassArticle is a document with a title marker and regular body.
	ClassArticle DocClass = iota

	// ClassScatteredNotes is a document with no title marker: independent
	// sections at the top level, compiled without an index event.
	ClassScatteredNotes

	// ClassIndexCard is a title marker followed, after optional metadata,
	// by the single index-card marker line and no sections. It compiles to
	// exactly one index event with no content events.
	ClassIndexCard
)

// String returns the class name for logging.
func (c DocClass) String() string {
	switch c {
	case ClassArticle:
		return "article"
	case ClassScatteredNotes:
		return "scattered-notes"
	case ClassIndexCard:
		return "index-card"
	default:
		return "unknown"
	}
}

// indexCardMarker is the literal body line that marks an index-card document.
const indexCardMarker = "index card"

// Extract parses the document header block and returns the extracted
// metadata together with the remaining body, header lines stripped.
// Empty input yields empty metadata and an empty body.
//
// Header shape: a "= Title" line, optionally followed by an author line,
// optionally followed by a revision line (only directly after the author
// line), followed by any run of ":key: value" attribute lines. Attribute
// consumption stops at the first blank or non-attribute line.
func Extract(text string) (domain.Metadata, string) {
	var meta domain.Metadata
	lines := strings.Split(text, "\n")

	i := skipBlank(lines, 0)
	if i < len(lines) {
		if title, ok := parseTitleLine(lines[i]); ok {
			meta.Title = title
			i++

			if i < len(lines) && isAuthorLine(lines[i]) {
				meta.Authors = splitAuthors(lines[i])
				i++

				if i < len(lines) {
					if ver, date, pub, ok := parseRevisionLine(lines[i]); ok {
						meta.Version = ver
						meta.PublishedOn = date
						meta.PublishedBy = pub
						i++
					}
				}
			}

			i = consumeAttrs(lines, i, &meta)
		}
	}

	return meta, strings.Trim(strings.Join(lines[i:], "\n"), "\n")
}

// ExtractSection extracts a section's own metadata from its body text.
// The section title comes from the heading line the splitter already
// consumed. Sections never inherit document metadata.
//
// A single bare non-empty first line is treated as a standalone author
// name when it matches the narrow author-line shape; the heuristic trades
// recall for precision and never consumes more than one line, an attribute
// line, or anything that looks like body prose.
func ExtractSection(title, body string) (domain.Metadata, string) {
	meta := domain.Metadata{Title: title}
	lines := strings.Split(body, "\n")

	i := skipBlank(lines, 0)
	if i < len(lines) && isAuthorLine(lines[i]) {
		meta.Authors = splitAuthors(lines[i])
		i++
	}
	i = consumeAttrs(lines, i, &meta)

	return meta, strings.Trim(strings.Join(lines[i:], "\n"), "\n")
}

// ExtractSmart extracts document metadata and classifies the document.
// The classification feeds the compiler's top-level branching: articles
// get an index event plus content events, scattered notes skip the index
// event, index cards produce only the index event.
func ExtractSmart(text string) (domain.Metadata, string, DocClass) {
	if !hasTitleLine(text) {
		return domain.Metadata{}, strings.Trim(text, "\n"), ClassScatteredNotes
	}

	meta, body := Extract(text)
	if strings.EqualFold(strings.TrimSpace(body), indexCardMarker) {
		return meta, "", ClassIndexCard
	}
	return meta, body, ClassArticle
}

// hasTitleLine reports whether the first non-blank line is a title marker.
func hasTitleLine(text string) bool {
	lines := strings.Split(text, "\n")
	i := skipBlank(lines, 0)
	if i >= len(lines) {
		return false
	}
	_, ok := parseTitleLine(lines[i])
	return ok
}

// skipBlank advances past blank lines starting at i.
func skipBlank(lines []string, i int) int {
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	return i
}

// attrCollector accumulates attribute values whose merge rules depend on
// other attributes, so merging happens once the whole run is consumed.
type attrCollector struct {
	summary     string
	description string
	tags        []string
	keywords    []string
	version     string
}

// consumeAttrs consumes a run of attribute lines starting at i, applying
// known keys to meta and retaining unknown keys as passthrough attributes.
// Returns the index of the first line not consumed.
func consumeAttrs(lines []string, i int, meta *domain.Metadata) int {
	var c attrCollector

	for ; i < len(lines); i++ {
		m := attrLineRe.FindStringSubmatch(lines[i])
		if m == nil {
			break
		}
		c.apply(meta, m[1], strings.TrimSpace(m[2]))
	}

	c.merge(meta)
	return i
}

// apply routes one attribute to its metadata field.
func (c *attrCollector) apply(meta *domain.Metadata, key, value string) {
	switch strings.ToLower(key) {
	case "author":
		meta.Authors = append(meta.Authors, value)
	case "version":
		c.version = value
	case "summary":
		c.summary = value
	case "description":
		c.description = value
	case "tags":
		c.tags = append(c.tags, splitCommaList(value)...)
	case "keywords":
		c.keywords = append(c.keywords, splitCommaList(value)...)
	case "type":
		meta.Type = value
	case "image":
		meta.Image = value
	case "isbn":
		meta.ISBN = value
	case "source":
		meta.Source = value
	case "auto-update":
		meta.AutoUpdate = value
	case "published_on":
		meta.PublishedOn = value
	case "published_by":
		meta.PublishedBy = value
	default:
		meta.Extra = append(meta.Extra, domain.Attr{Key: key, Value: value})
	}
}

// merge resolves the order-dependent rules once all attributes are read:
// summary wins over description but a differing description is appended,
// tags precede keywords, and a revision-line version beats the attribute.
func (c *attrCollector) merge(meta *domain.Metadata) {
	switch {
	case c.summary != "" && c.description != "" && c.summary != c.description:
		meta.Summary = c.summary + " " + c.description
	case c.summary != "":
		meta.Summary = c.summary
	case c.description != "":
		meta.Summary = c.description
	}

	meta.Tags = append(meta.Tags, c.tags...)
	meta.Tags = append(meta.Tags, c.keywords...)

	if meta.Version == "" {
		meta.Version = c.version
	}
}
