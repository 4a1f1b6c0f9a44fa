package domain

// Kind values for publication events.
const (
	// KindIndex is an index/branch event. Its content is empty and it
	// links to child events through "a" reference tags.
	KindIndex = 30040

	// KindContent is a leaf event carrying actual section body text.
	KindContent = 30041
)

// Addressable kind range. Events inside this range are identified by their
// coordinate rather than by content hash; newer versions logically replace
// older ones.
const (
	addressableKindMin = 30000
	addressableKindMax = 39999
)

// Tag is an ordered key followed by zero or more values,
// e.g. ["title", "My Document"] or ["a", "30041:abc:my-doc-intro"].
type Tag []string

// Key returns the tag key, or "" for a malformed empty tag.
func (t Tag) Key() string {
	if len(t) == 0 {
		return ""
	}
	return t[0]
}

// Value returns the first tag value, or "" if the tag carries none.
func (t Tag) Value() string {
	if len(t) < 2 {
		return ""
	}
	return t[1]
}

// Event is an unsigned publication event description. The compiler emits
// events; the caller is responsible for signing and publishing them through
// the event-store transport. Events are never mutated after creation: a
// re-compile produces a wholly new set.
type Event struct {
	// ID is a draft identifier assigned at compile time. It is not the
	// wire identity; addressable events are identified by Coordinate.
	ID string `json:"id"`

	// Kind selects index/branch vs leaf/content semantics.
	Kind int `json:"kind"`

	// AuthorKey is the caller-supplied publishing key.
	AuthorKey string `json:"pubkey"`

	// CreatedAt is the creation time in unix seconds. Zero means unset;
	// an event without CreatedAt loses deduplication to any that has one.
	CreatedAt int64 `json:"created_at"`

	// Content is the body text for leaf events, empty for index events.
	Content string `json:"content"`

	// Tags is the ordered tag list: "d" (slug), "title", "author",
	// "version", "summary", topic "t" tags, child "a" references, etc.
	Tags []Tag `json:"tags"`
}

// TagValue returns the first value of the first tag with the given key.
func (e *Event) TagValue(key string) (string, bool) {
	for _, t := range e.Tags {
		if t.Key() == key {
			return t.Value(), true
		}
	}
	return "", false
}

// TagValues returns the first value of every tag with the given key,
// in tag order.
func (e *Event) TagValues(key string) []string {
	var values []string
	for _, t := range e.Tags {
		if t.Key() == key {
			values = append(values, t.Value())
		}
	}
	return values
}

// Slug returns the event's "d" tag value, the third coordinate component.
func (e *Event) Slug() string {
	v, _ := e.TagValue("d")
	return v
}

// Title returns the event's "title" tag value.
func (e *Event) Title() string {
	v, _ := e.TagValue("title")
	return v
}
