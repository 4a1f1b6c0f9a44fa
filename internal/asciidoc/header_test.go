package asciidoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTitleLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		title   string
		isTitle bool
	}{
		{"simple title", "= My Document", "My Document", true},
		{"tab after marker", "=\tMy Document", "My Document", true},
		{"extra spaces trimmed", "=   Spaced Title  ", "Spaced Title", true},
		{"section marker is not a title", "== Section", "", false},
		{"no space after marker", "=Title", "", false},
		{"bare marker", "= ", "", false},
		{"plain prose", "Just text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, ok := parseTitleLine(tt.line)
			assert.Equal(t, tt.isTitle, ok)
			assert.Equal(t, tt.title, title)
		})
	}
}

func TestParseHeadingLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		level     int
		title     string
		isHeading bool
	}{
		{"level 2", "== First Section", 2, "First Section", true},
		{"level 3", "=== Nested", 3, "Nested", true},
		{"deeper marker not a boundary", "=== Nested", 2, "", false},
		{"shallower marker not a boundary", "== Section", 3, "", false},
		{"title marker not a section", "= Title", 2, "", false},
		{"no whitespace after marker", "==Tight", 2, "", false},
		{"empty heading text", "== ", 2, "", false},
		{"level below two rejected", "= Title", 1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, ok := parseHeadingLine(tt.line, tt.level)
			assert.Equal(t, tt.isHeading, ok)
			assert.Equal(t, tt.title, title)
		})
	}
}

func TestIsAuthorLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		isAuthor bool
	}{
		{"single name", "John Doe", true},
		{"name with email", "John Doe <john@example.com>", true},
		{"two names semicolon", "John Doe; Jane Roe", true},
		{"two names comma", "John Doe, Jane Roe", true},
		{"emails per name", "John Doe <j@x.io>; Jane Roe <jane@x.io>", true},
		{"initials and dots", "J. R. R. Tolkien", true},
		{"lowercase start rejected", "index card", false},
		{"sentence rejected", "This line ends with a period.", false},
		{"long prose rejected", "The quick brown fox jumps over the lazy dog", false},
		{"attribute line rejected", ":author: John Doe", false},
		{"heading rejected", "== Section", false},
		{"blank rejected", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isAuthor, isAuthorLine(tt.line))
		})
	}
}

func TestSplitAuthors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		authors []string
	}{
		{"single", "John Doe", []string{"John Doe"}},
		{"email stripped", "John Doe <john@example.com>", []string{"John Doe"}},
		{"semicolon delimited", "John Doe; Jane Roe", []string{"John Doe", "Jane Roe"}},
		{"comma delimited with emails", "A One <a@x.io>, B Two <b@x.io>", []string{"A One", "B Two"}},
		{"whitespace trimmed", "  John Doe  ;  Jane Roe  ", []string{"John Doe", "Jane Roe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.authors, splitAuthors(tt.line))
		})
	}
}

func TestParseRevisionLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		version   string
		date      string
		publisher string
		ok        bool
	}{
		{"full comma form", "1.0, 2024-01-01, Some Press", "1.0", "2024-01-01", "Some Press", true},
		{"colon publisher form", "v2.1, 2024-06-15: Some Press", "2.1", "2024-06-15", "Some Press", true},
		{"version only", "v3", "3", "", "", true},
		{"version and date", "1.0, 2024-01-01", "1.0", "2024-01-01", "", true},
		{"v prefix stripped", "v1.0", "1.0", "", "", true},
		{"prose rejected", "This is just a paragraph", "", "", "", false},
		{"word starting with v rejected", "very much prose", "", "", "", false},
		{"attribute line rejected", ":version: 1.0", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, date, publisher, ok := parseRevisionLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.version, version)
			assert.Equal(t, tt.date, date)
			assert.Equal(t, tt.publisher, publisher)
		})
	}
}
