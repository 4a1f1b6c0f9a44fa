package domain

// Attr is a single passthrough attribute from a ":key: value" line whose
// key is not one of the known metadata fields. Insertion order is preserved
// so tag emission stays stable across compiles.
type Attr struct {
	Key   string
	Value string
}

// Metadata is the structured attribute record extracted from a document
// header or a section header. A section's metadata never inherits from the
// document; the two are extracted independently.
type Metadata struct {
	// Title is the heading text.
	Title string

	// Authors is the ordered author list: header-line author(s) first,
	// then every "author" attribute value in source order, no de-duplication.
	Authors []string

	// Version comes from the revision line when present, otherwise from
	// a "version" attribute.
	Version string

	// PublishedOn is the publication date from the revision line.
	PublishedOn string

	// PublishedBy is the publisher from the revision line.
	PublishedBy string

	// Summary merges the "summary" and "description" attributes.
	Summary string

	// Tags merges the comma-separated "tags" and "keywords" attributes,
	// order-preserving, duplicates kept.
	Tags []string

	// Type is an arbitrary type string ("book", "article", ...).
	Type string

	// Image is a cover or illustration URL.
	Image string

	// ISBN is emitted as an "i" identifier tag, not a tag named "isbn".
	ISBN string

	// Source is the original source URL of the document.
	Source string

	// AutoUpdate signals whether readers should follow newer versions.
	AutoUpdate string

	// Extra holds unknown attributes in insertion order.
	Extra []Attr
}

// IsZero reports whether no metadata field is set.
func (m *Metadata) IsZero() bool {
	return m.Title == "" && len(m.Authors) == 0 && m.Version == "" &&
		m.PublishedOn == "" && m.PublishedBy == "" && m.Summary == "" &&
		len(m.Tags) == 0 && m.Type == "" && m.Image == "" && m.ISBN == "" &&
		m.Source == "" && m.AutoUpdate == "" && len(m.Extra) == 0
}

// EventTags renders the metadata as an ordered event tag list. The "d" slug
// tag is not included; the compiler prepends it because only the compiler
// knows the composed ancestor-path slug.
func (m *Metadata) EventTags() []Tag {
	var tags []Tag

	if m.Title != "" {
		tags = append(tags, Tag{"title", m.Title})
	}
	for _, author := range m.Authors {
		tags = append(tags, Tag{"author", author})
	}
	if m.Version != "" {
		tags = append(tags, Tag{"version", m.Version})
	}
	if m.PublishedOn != "" {
		tags = append(tags, Tag{"published_on", m.PublishedOn})
	}
	if m.PublishedBy != "" {
		tags = append(tags, Tag{"published_by", m.PublishedBy})
	}
	if m.Summary != "" {
		tags = append(tags, Tag{"summary", m.Summary})
	}
	if m.Type != "" {
		tags = append(tags, Tag{"type", m.Type})
	}
	if m.Image != "" {
		tags = append(tags, Tag{"image", m.Image})
	}
	if m.ISBN != "" {
		tags = append(tags, Tag{"i", m.ISBN})
	}
	if m.Source != "" {
		tags = append(tags, Tag{"source", m.Source})
	}
	if m.AutoUpdate != "" {
		tags = append(tags, Tag{"auto-update", m.AutoUpdate})
	}
	for _, topic := range m.Tags {
		tags = append(tags, Tag{"t", topic})
	}
	for _, attr := range m.Extra {
		tags = append(tags, Tag{attr.Key, attr.Value})
	}

	return tags
}
