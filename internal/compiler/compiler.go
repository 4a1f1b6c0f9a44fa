package compiler

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/asciidoc"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
)

// Parse level bounds. The parse level is the heading depth at which the
// compiler stops creating events and flattens remaining structure into the
// enclosing leaf's raw text.
const (
	MinParseLevel = 2
	MaxParseLevel = 5
)

// PreambleMode selects what happens to the free text between the document
// header and the first level-2 section.
type PreambleMode int

const (
	// PreambleDiscard drops the preamble; the index event content stays
	// empty. This matches the observed behaviour of published indexes.
	PreambleDiscard PreambleMode = iota

	// PreambleAttach stores the preamble as the index event content.
	PreambleAttach
)

// Options configure one Compile call. AuthorKey and CreatedAt are base
// fields supplied by the caller's identity layer; the compiler never reads
// ambient state.
type Options struct {
	// AuthorKey is the publishing key stamped on every emitted event.
	AuthorKey string

	// CreatedAt is the creation time in unix seconds for every emitted event.
	CreatedAt int64

	// ParseLevel is the heading depth (2 to 5 inclusive) at which
	// flattening begins. Out-of-range values fail before any parsing work.
	ParseLevel int

	// ExtraTags are spliced into the top-level index event after the
	// document metadata tags, e.g. a caller-controlled type override.
	ExtraTags []domain.Tag

	// Preamble selects handling of the document preamble body text.
	Preamble PreambleMode
}

// Result is a compiled event tree.
type Result struct {
	// Class is the document classification that drove compilation.
	Class asciidoc.DocClass

	// Index is the top-level index event, or nil for scattered notes.
	Index *domain.Event

	// Events are the branch and leaf events in document order.
	Events []domain.Event

	// Collisions lists coordinates emitted more than once, which happens
	// when sibling titles normalize to the same slug. The compiler does not
	// disambiguate them; callers decide whether to accept last-write-wins
	// at publish time.
	Collisions []domain.Coordinate
}

// All returns every emitted event, index first, in document order.
func (r *Result) All() []domain.Event {
	if r.Index == nil {
		return r.Events
	}
	all := make([]domain.Event, 0, len(r.Events)+1)
	all = append(all, *r.Index)
	return append(all, r.Events...)
}

// Compile turns document text into an event tree.
//
// The document is validated first; a structural failure aborts with
// domain.ErrInvalidDocument and no events. Classification then branches:
// scattered notes compile each top-level section with no index event,
// index cards compile to a single index event, and articles produce an
// index event whose "a" tags reference one event per level-2 section,
// with branch events created wherever the parse level permits descending
// into populated subsections.
func Compile(text string, opts Options) (*Result, error) {
	if opts.ParseLevel < MinParseLevel || opts.ParseLevel > MaxParseLevel {
		return nil, fmt.Errorf("parse level %d: %w", opts.ParseLevel, domain.ErrInvalidParseLevel)
	}

	if v := asciidoc.Validate(text); !v.Valid {
		return nil, fmt.Errorf("%s: %w", v.Reason, domain.ErrInvalidDocument)
	}

	meta, body, class := asciidoc.ExtractSmart(text)
	c := compilation{opts: opts}

	result := Result{Class: class}
	switch class {
	case asciidoc.ClassScatteredNotes:
		// No index event and no document metadata: each top-level section
		// stands alone with only its own extracted metadata.
		sections, _ := asciidoc.SplitSections(body, MinParseLevel)
		for _, sec := range sections {
			result.Events = append(result.Events, c.section(sec, "", MinParseLevel)...)
		}

	case asciidoc.ClassIndexCard:
		index := c.event(domain.KindIndex, "", domain.NormalizeSlug(meta.Title), &meta, opts.ExtraTags)
		result.Index = &index

	default: // article
		docSlug := domain.NormalizeSlug(meta.Title)
		sections, preamble := asciidoc.SplitSections(body, MinParseLevel)

		content := ""
		if opts.Preamble == PreambleAttach {
			content = preamble
		}

		index := c.event(domain.KindIndex, content, docSlug, &meta, opts.ExtraTags)
		for _, sec := range sections {
			emitted := c.section(sec, docSlug, MinParseLevel)
			index.Tags = append(index.Tags, addressTag(&emitted[0]))
			result.Events = append(result.Events, emitted...)
		}
		result.Index = &index
	}

	result.Collisions = findCollisions(&result)
	return &result, nil
}

// compilation carries per-call state through the recursive descent.
type compilation struct {
	opts Options
}

// section compiles one section at the given depth and returns the emitted
// events in document order, the section's own event first.
//
// A section becomes a branch only when the parse level permits descending
// further and it has direct children one level deeper. Otherwise it is a
// leaf whose content keeps all deeper markup verbatim.
func (c *compilation) section(sec domain.Section, parentSlug string, depth int) []domain.Event {
	meta, body := asciidoc.ExtractSection(sec.Title, sec.Body)
	slug := domain.JoinSlug(parentSlug, domain.NormalizeSlug(sec.Title))

	if depth < c.opts.ParseLevel {
		children, _ := asciidoc.SplitSections(body, sec.Level+1)
		if len(children) > 0 {
			branch := c.event(domain.KindIndex, "", slug, &meta, nil)
			out := []domain.Event{branch}
			for _, child := range children {
				emitted := c.section(child, slug, depth+1)
				out[0].Tags = append(out[0].Tags, addressTag(&emitted[0]))
				out = append(out, emitted...)
			}
			return out
		}
	}

	return []domain.Event{c.event(domain.KindContent, body, slug, &meta, nil)}
}

// event assembles one emitted event with the "d" slug tag first, then the
// metadata tags, then any extra tags.
func (c *compilation) event(kind int, content, slug string, meta *domain.Metadata, extra []domain.Tag) domain.Event {
	metaTags := meta.EventTags()
	tags := make([]domain.Tag, 0, len(metaTags)+len(extra)+1)
	tags = append(tags, domain.Tag{"d", slug})
	tags = append(tags, metaTags...)
	tags = append(tags, extra...)

	return domain.Event{
		ID:        uuid.New().String(),
		Kind:      kind,
		AuthorKey: c.opts.AuthorKey,
		CreatedAt: c.opts.CreatedAt,
		Content:   content,
		Tags:      tags,
	}
}

// addressTag builds an "a" child-reference tag from an event's coordinate.
func addressTag(ev *domain.Event) domain.Tag {
	coord, _ := domain.CoordinateOf(ev)
	return domain.Tag{"a", coord.String()}
}

// findCollisions reports coordinates emitted more than once, in first
// occurrence order. The compiled tree itself never needs resolution; this
// is the internal invariant check over the compiler's own output.
func findCollisions(result *Result) []domain.Coordinate {
	counts := make(map[domain.Coordinate]int)
	var order []domain.Coordinate

	for _, ev := range result.All() {
		coord, ok := domain.CoordinateOf(&ev)
		if !ok {
			continue
		}
		if counts[coord] == 0 {
			order = append(order, coord)
		}
		counts[coord]++
	}

	var collisions []domain.Coordinate
	for _, coord := range order {
		if counts[coord] > 1 {
			collisions = append(collisions, coord)
		}
	}
	return collisions
}
