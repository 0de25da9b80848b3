// Package selector looks up a parsed section by description and shape.
package selector

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/4nd3r5on/go-comsolfile/common"
)

// Match is a selected section. The column count cache isn't carried over.
type Match struct {
	Description string
	Matrix      common.Matrix
}

// Select returns the first section whose description contains the given
// text, ignoring case, and whose shape satisfies the options.
// An empty contains matches every description.
// The second result is false when nothing matches.
func Select(sections []common.Section, contains string, options ...Option) (Match, bool) {
	cfg := &Config{}
	for _, option := range options {
		option(cfg)
	}

	fold := cases.Fold()
	needle := fold.String(contains)

	for _, section := range sections {
		if !strings.Contains(fold.String(section.Description), needle) {
			continue
		}
		if cfg.NCol != nil && section.NCol != *cfg.NCol {
			continue
		}
		if cfg.NRow != nil && section.Matrix.Rows() != *cfg.NRow {
			continue
		}

		return Match{
			Description: section.Description,
			Matrix:      section.Matrix,
		}, true
	}

	return Match{}, false
}
