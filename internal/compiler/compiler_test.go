package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
)

const testAuthorKey = "abc123"

func defaultOptions() Options {
	return Options{
		AuthorKey:  testAuthorKey,
		CreatedAt:  1700000000,
		ParseLevel: 2,
	}
}

const articleText = `= My Document
John Doe
:summary: A document about things.

Preamble text before the first section.

== First Section
First section body.

=== Deeper Heading
Deeper text stays inside the parent.

== Second Section
Second section body.`

func TestCompile_ArticleAtLevelTwo(t *testing.T) {
	result, err := Compile(articleText, defaultOptions())
	require.NoError(t, err)
	require.NotNil(t, result.Index)

	// One leaf per level-2 section.
	require.Len(t, result.Events, 2)
	for _, ev := range result.Events {
		assert.Equal(t, domain.KindContent, ev.Kind)
		assert.Equal(t, testAuthorKey, ev.AuthorKey)
		assert.Equal(t, int64(1700000000), ev.CreatedAt)
	}

	assert.Equal(t, domain.KindIndex, result.Index.Kind)
	assert.Equal(t, "my-document", result.Index.Slug())
	assert.Equal(t, "My Document", result.Index.Title())
	assert.Equal(t, "", result.Index.Content)

	// Ancestor-path slug composition.
	assert.Equal(t, "my-document-first-section", result.Events[0].Slug())
	assert.Equal(t, "my-document-second-section", result.Events[1].Slug())

	// Index "a" tags reference the content coordinates in document order.
	refs := result.Index.TagValues("a")
	require.Len(t, refs, 2)
	for i, ref := range refs {
		coord, ok := domain.CoordinateOf(&result.Events[i])
		require.True(t, ok)
		assert.Equal(t, coord.String(), ref)
	}
}

func TestCompile_DeeperMarkupStaysVerbatim(t *testing.T) {
	result, err := Compile(articleText, defaultOptions())
	require.NoError(t, err)

	first := result.Events[0]
	assert.Contains(t, first.Content, "=== Deeper Heading")
	assert.Contains(t, first.Content, "Deeper text stays inside the parent.")
}

func TestCompile_BranchAtLevelThree(t *testing.T) {
	opts := defaultOptions()
	opts.ParseLevel = 3

	result, err := Compile(articleText, opts)
	require.NoError(t, err)

	// First Section has a level-3 child, so it becomes a branch.
	require.Len(t, result.Events, 3)
	branch := result.Events[0]
	assert.Equal(t, domain.KindIndex, branch.Kind)
	assert.Equal(t, "my-document-first-section", branch.Slug())
	assert.Equal(t, "", branch.Content)

	child := result.Events[1]
	assert.Equal(t, domain.KindContent, child.Kind)
	assert.Equal(t, "my-document-first-section-deeper-heading", child.Slug())
	assert.Contains(t, child.Content, "Deeper text stays inside the parent.")

	childCoord, ok := domain.CoordinateOf(&child)
	require.True(t, ok)
	assert.Equal(t, []string{childCoord.String()}, branch.TagValues("a"))

	// Second Section has no level-3 children: still a leaf.
	leaf := result.Events[2]
	assert.Equal(t, domain.KindContent, leaf.Kind)
	assert.Equal(t, "my-document-second-section", leaf.Slug())

	// The index references its two direct children only.
	refs := result.Index.TagValues("a")
	branchCoord, _ := domain.CoordinateOf(&branch)
	leafCoord, _ := domain.CoordinateOf(&leaf)
	assert.Equal(t, []string{branchCoord.String(), leafCoord.String()}, refs)
}

func TestCompile_ScatteredNotes(t *testing.T) {
	text := `== First
First note body.

== Second
Second note body.`

	result, err := Compile(text, defaultOptions())
	require.NoError(t, err)

	assert.Nil(t, result.Index)
	require.Len(t, result.Events, 2)
	for _, ev := range result.Events {
		assert.Equal(t, domain.KindContent, ev.Kind)
	}

	// No document slug to compose with: bare section slugs.
	assert.Equal(t, "first", result.Events[0].Slug())
	assert.Equal(t, "second", result.Events[1].Slug())
	assert.Equal(t, "First note body.", result.Events[0].Content)
}

func TestCompile_IndexCard(t *testing.T) {
	result, err := Compile("= Test Index Card\nindex card", defaultOptions())
	require.NoError(t, err)

	require.NotNil(t, result.Index)
	assert.Empty(t, result.Events)
	assert.Equal(t, domain.KindIndex, result.Index.Kind)
	assert.Equal(t, "", result.Index.Content)
	assert.Contains(t, result.Index.Tags, domain.Tag{"d", "test-index-card"})
	assert.Contains(t, result.Index.Tags, domain.Tag{"title", "Test Index Card"})
	assert.Empty(t, result.Index.TagValues("a"))
}

func TestCompile_InvalidParseLevel(t *testing.T) {
	for _, level := range []int{-1, 0, 1, 6, 10} {
		opts := defaultOptions()
		opts.ParseLevel = level

		_, err := Compile(articleText, opts)
		assert.ErrorIs(t, err, domain.ErrInvalidParseLevel, "parse level %d", level)
	}
}

func TestCompile_InvalidDocument(t *testing.T) {
	_, err := Compile("Plain prose with no markers at all.", defaultOptions())
	require.ErrorIs(t, err, domain.ErrInvalidDocument)
	assert.Contains(t, err.Error(), "document title")
}

func TestCompile_TitleWithoutSections(t *testing.T) {
	result, err := Compile("= Lonely Title\n\nJust a paragraph.", defaultOptions())
	require.NoError(t, err)

	require.NotNil(t, result.Index)
	assert.Empty(t, result.Events)
	assert.Empty(t, result.Index.TagValues("a"))
}

func TestCompile_ExtraTagsSpliced(t *testing.T) {
	opts := defaultOptions()
	opts.ExtraTags = []domain.Tag{{"type", "book"}}

	result, err := Compile(articleText, opts)
	require.NoError(t, err)

	v, ok := result.Index.TagValue("type")
	require.True(t, ok)
	assert.Equal(t, "book", v)

	// Extra tags go to the index only, not to content events.
	for _, ev := range result.Events {
		_, ok := ev.TagValue("type")
		assert.False(t, ok)
	}
}

func TestCompile_SectionMetadataOnLeaf(t *testing.T) {
	text := `= Doc
== Chapter
Jane Roe
:summary: Chapter summary.
:tags: one, two

Chapter body.`

	result, err := Compile(text, defaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Events, 1)

	leaf := result.Events[0]
	assert.Equal(t, []string{"Jane Roe"}, leaf.TagValues("author"))
	summary, _ := leaf.TagValue("summary")
	assert.Equal(t, "Chapter summary.", summary)
	assert.Equal(t, []string{"one", "two"}, leaf.TagValues("t"))
	assert.Equal(t, "Chapter body.", leaf.Content)
}

func TestCompile_PreambleModes(t *testing.T) {
	t.Run("discarded by default", func(t *testing.T) {
		result, err := Compile(articleText, defaultOptions())
		require.NoError(t, err)
		assert.Equal(t, "", result.Index.Content)
	})

	t.Run("attached on request", func(t *testing.T) {
		opts := defaultOptions()
		opts.Preamble = PreambleAttach

		result, err := Compile(articleText, opts)
		require.NoError(t, err)
		assert.Equal(t, "Preamble text before the first section.", result.Index.Content)
	})
}

func TestCompile_SiblingTitleCollisions(t *testing.T) {
	text := `= Doc
== Same Title
first body

== Same Title
second body`

	result, err := Compile(text, defaultOptions())
	require.NoError(t, err)

	// Colliding siblings are emitted as-is and reported, not deduplicated.
	require.Len(t, result.Events, 2)
	assert.Equal(t, result.Events[0].Slug(), result.Events[1].Slug())
	require.Len(t, result.Collisions, 1)
	assert.Equal(t, "doc-same-title", result.Collisions[0].Slug)
}

func TestCompile_NoCollisionsOnDistinctTitles(t *testing.T) {
	result, err := Compile(articleText, defaultOptions())
	require.NoError(t, err)
	assert.Empty(t, result.Collisions)
}

func TestResult_All(t *testing.T) {
	result, err := Compile(articleText, defaultOptions())
	require.NoError(t, err)

	all := result.All()
	require.Len(t, all, 3)
	assert.Equal(t, result.Index.ID, all[0].ID)

	notes, err := Compile("== A\nbody", defaultOptions())
	require.NoError(t, err)
	assert.Len(t, notes.All(), 1)
}
