package asciidoc

import (
	"strings"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
)

// Validate runs the pre-flight structure check on a document.
//
// Valid forms: a document title marker (article or index card), or at least
// one level-2 section with no title (scattered notes). Plain prose with
// neither is rejected with a reason naming the missing document title so
// callers can surface an actionable message.
func Validate(text string) domain.ValidationResult {
	if hasTitleLine(text) {
		return domain.ValidationResult{Valid: true}
	}

	for _, line := range strings.Split(text, "\n") {
		if _, ok := parseHeadingLine(line, 2); ok {
			return domain.ValidationResult{Valid: true}
		}
	}

	return domain.ValidationResult{
		Valid:  false,
		Reason: `missing document title: add a "= Title" line or at least one "== Section" heading`,
	}
}
