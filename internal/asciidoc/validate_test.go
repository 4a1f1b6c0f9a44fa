package asciidoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		valid bool
	}{
		{"article with title", "= Title\n\nbody", true},
		{"index card", "= Test Index Card\nindex card", true},
		{"scattered notes without title", "== First\ntext\n== Second\ntext", true},
		{"leading blank lines before title", "\n\n= Title\nbody", true},
		{"plain prose", "Just some prose.\nNothing else.", false},
		{"empty input", "", false},
		{"deep heading alone is not enough", "=== Only Deep\ntext", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.text)
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.Contains(t, result.Reason, "document title")
			} else {
				assert.Empty(t, result.Reason)
			}
		})
	}
}
