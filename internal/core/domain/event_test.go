package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTag_KeyValue(t *testing.T) {
	assert.Equal(t, "title", Tag{"title", "My Doc"}.Key())
	assert.Equal(t, "My Doc", Tag{"title", "My Doc"}.Value())
	assert.Equal(t, "d", Tag{"d"}.Key())
	assert.Equal(t, "", Tag{"d"}.Value())
	assert.Equal(t, "", Tag{}.Key())
	assert.Equal(t, "", Tag{}.Value())
}

func TestEvent_TagValue(t *testing.T) {
	ev := &Event{
		Tags: []Tag{
			{"d", "my-doc"},
			{"title", "My Doc"},
			{"author", "First Author"},
			{"author", "Second Author"},
		},
	}

	v, ok := ev.TagValue("title")
	assert.True(t, ok)
	assert.Equal(t, "My Doc", v)

	// First match wins for repeated keys.
	v, ok = ev.TagValue("author")
	assert.True(t, ok)
	assert.Equal(t, "First Author", v)

	_, ok = ev.TagValue("missing")
	assert.False(t, ok)
}

func TestEvent_TagValues(t *testing.T) {
	ev := &Event{
		Tags: []Tag{
			{"t", "philosophy"},
			{"title", "My Doc"},
			{"t", "history"},
		},
	}

	assert.Equal(t, []string{"philosophy", "history"}, ev.TagValues("t"))
	assert.Nil(t, ev.TagValues("missing"))
}

func TestEvent_SlugAndTitle(t *testing.T) {
	ev := &Event{Tags: []Tag{{"d", "my-doc"}, {"title", "My Doc"}}}
	assert.Equal(t, "my-doc", ev.Slug())
	assert.Equal(t, "My Doc", ev.Title())

	empty := &Event{}
	assert.Equal(t, "", empty.Slug())
	assert.Equal(t, "", empty.Title())
}
