package asciidoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
)

func TestExtract_FullHeader(t *testing.T) {
	text := `= My Book
John Doe <john@example.com>; Jane Roe
v1.2, 2024-03-01: Some Press
:summary: A tale of two parsers.
:tags: parsing, compilers
:isbn: 978-0000000000

The first paragraph of the body.`

	meta, body := Extract(text)

	assert.Equal(t, "My Book", meta.Title)
	assert.Equal(t, []string{"John Doe", "Jane Roe"}, meta.Authors)
	assert.Equal(t, "1.2", meta.Version)
	assert.Equal(t, "2024-03-01", meta.PublishedOn)
	assert.Equal(t, "Some Press", meta.PublishedBy)
	assert.Equal(t, "A tale of two parsers.", meta.Summary)
	assert.Equal(t, []string{"parsing", "compilers"}, meta.Tags)
	assert.Equal(t, "978-0000000000", meta.ISBN)
	assert.Equal(t, "The first paragraph of the body.", body)
}

func TestExtract_AuthorMergeOrder(t *testing.T) {
	text := `= My Book
Header Author
:author: First Attribute Author
:author: Second Attribute Author

Body.`

	meta, _ := Extract(text)

	// Header-line author first, then attribute authors in source order,
	// no de-duplication.
	assert.Equal(t, []string{"Header Author", "First Attribute Author", "Second Attribute Author"}, meta.Authors)
}

func TestExtract_SummaryDescriptionMerge(t *testing.T) {
	tests := []struct {
		name     string
		attrs    string
		expected string
	}{
		{
			name:     "summary only",
			attrs:    ":summary: Just a summary.",
			expected: "Just a summary.",
		},
		{
			name:     "description only",
			attrs:    ":description: Just a description.",
			expected: "Just a description.",
		},
		{
			name:     "both distinct are space-joined",
			attrs:    ":summary: First part.\n:description: Second part.",
			expected: "First part. Second part.",
		},
		{
			name:     "both identical kept once",
			attrs:    ":summary: Same text.\n:description: Same text.",
			expected: "Same text.",
		},
		{
			name:     "description before summary still summary-first",
			attrs:    ":description: Second part.\n:summary: First part.",
			expected: "First part. Second part.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, _ := Extract("= Title\n" + tt.attrs + "\n\nBody.")
			assert.Equal(t, tt.expected, meta.Summary)
		})
	}
}

func TestExtract_TagsKeywordsMerge(t *testing.T) {
	text := `= Title
:keywords: gamma, delta
:tags: alpha, beta

Body.`

	meta, _ := Extract(text)

	// Tags values precede keywords values regardless of source order;
	// duplicates are not removed across the two sources.
	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta"}, meta.Tags)

	meta, _ = Extract("= Title\n:tags: a, b\n:keywords: b, c\n\nBody.")
	assert.Equal(t, []string{"a", "b", "b", "c"}, meta.Tags)
}

func TestExtract_RevisionLineWinsOverVersionAttribute(t *testing.T) {
	text := `= Title
John Doe
v9.9, 2024-01-01
:version: 1.0

Body.`

	meta, _ := Extract(text)
	assert.Equal(t, "9.9", meta.Version)
}

func TestExtract_VersionAttributeWithoutRevisionLine(t *testing.T) {
	meta, _ := Extract("= Title\n:version: 1.0\n\nBody.")
	assert.Equal(t, "1.0", meta.Version)
}

func TestExtract_UnknownAttributesRetained(t *testing.T) {
	text := `= Title
:custom-key: custom value
:another: second value

Body.`

	meta, _ := Extract(text)
	assert.Equal(t, []domain.Attr{
		{Key: "custom-key", Value: "custom value"},
		{Key: "another", Value: "second value"},
	}, meta.Extra)
}

func TestExtract_AttrRunStopsAtBlankLine(t *testing.T) {
	text := `= Title
:summary: In the header.

:not-an-attr: this is body text`

	meta, body := Extract(text)
	assert.Equal(t, "In the header.", meta.Summary)
	assert.Empty(t, meta.Extra)
	assert.Equal(t, ":not-an-attr: this is body text", body)
}

func TestExtract_EmptyInput(t *testing.T) {
	meta, body := Extract("")
	assert.True(t, meta.IsZero())
	assert.Empty(t, body)
}

func TestExtract_NoTitle(t *testing.T) {
	text := "Just prose with no header at all."
	meta, body := Extract(text)
	assert.True(t, meta.IsZero())
	assert.Equal(t, text, body)
}

func TestExtractSection_AuthorHeuristic(t *testing.T) {
	t.Run("bare author name consumed", func(t *testing.T) {
		meta, body := ExtractSection("My Section", "Jane Roe\n\nThe section body.")
		assert.Equal(t, []string{"Jane Roe"}, meta.Authors)
		assert.Equal(t, "The section body.", body)
	})

	t.Run("prose not consumed", func(t *testing.T) {
		meta, body := ExtractSection("My Section", "this looks like ordinary prose\nmore text")
		assert.Empty(t, meta.Authors)
		assert.Equal(t, "this looks like ordinary prose\nmore text", body)
	})

	t.Run("only one line is ever consumed", func(t *testing.T) {
		meta, body := ExtractSection("My Section", "Jane Roe\nJohn Doe\nbody")
		assert.Equal(t, []string{"Jane Roe"}, meta.Authors)
		assert.Equal(t, "John Doe\nbody", body)
	})

	t.Run("attribute line is not an author", func(t *testing.T) {
		meta, body := ExtractSection("My Section", ":summary: section summary\n\nbody")
		assert.Empty(t, meta.Authors)
		assert.Equal(t, "section summary", meta.Summary)
		assert.Equal(t, "body", body)
	})
}

func TestExtractSection_IndependentOfDocument(t *testing.T) {
	meta, _ := ExtractSection("Section Title", "body only")
	assert.Equal(t, "Section Title", meta.Title)
	assert.Empty(t, meta.Authors)
	assert.Empty(t, meta.Summary)
}

func TestExtractSmart_Classification(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		class DocClass
	}{
		{
			name:  "article",
			text:  "= Title\n\nSome body.\n\n== Section\ntext",
			class: ClassArticle,
		},
		{
			name:  "scattered notes",
			text:  "== First\ntext\n\n== Second\ntext",
			class: ClassScatteredNotes,
		},
		{
			name:  "index card",
			text:  "= Test Index Card\nindex card",
			class: ClassIndexCard,
		},
		{
			name:  "index card with metadata",
			text:  "= Test Index Card\n:summary: About something.\n\nindex card",
			class: ClassIndexCard,
		},
		{
			name:  "title without sections is still an article",
			text:  "= Title\n\nOnly prose.",
			class: ClassArticle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, class := ExtractSmart(tt.text)
			assert.Equal(t, tt.class, class)
		})
	}
}

func TestExtractSmart_IndexCardBodyIsEmpty(t *testing.T) {
	meta, body, class := ExtractSmart("= Test Index Card\nindex card")
	require.Equal(t, ClassIndexCard, class)
	assert.Equal(t, "Test Index Card", meta.Title)
	assert.Empty(t, body)
}

func TestDocClass_String(t *testing.T) {
	assert.Equal(t, "article", ClassArticle.String())
	assert.Equal(t, "scattered-notes", ClassScatteredNotes.String())
	assert.Equal(t, "index-card", ClassIndexCard.String())
	assert.Equal(t, "unknown", DocClass(99).String())
}
