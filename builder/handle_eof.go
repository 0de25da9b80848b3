package builder

import (
	"github.com/4nd3r5on/go-comsolfile/common"
)

// HandleEOF closes any open matrix and returns the sections that pass the
// row filter, in file order.
func (b *Builder) HandleEOF(lineIdx int64) []common.Section {
	b.Logger.Debug("reached end of stream", "final_line", lineIdx)

	if b.collecting && b.block != nil && len(b.block.Rows) > 0 {
		b.finalize()
	}
	b.reset()

	return b.filterSections()
}

// filterSections drops metadata-only sections with fewer than MinRows rows.
func (b *Builder) filterSections() []common.Section {
	out := make([]common.Section, 0, len(b.sections))

	for _, section := range b.sections {
		if section.Matrix.Rows() < b.MinRows {
			b.Logger.Debug("dropping short section",
				"rows", section.Matrix.Rows(),
				"description", common.FirstLine(section.Description))
			continue
		}
		out = append(out, section)
	}

	b.Logger.Info("sections extracted", "total", len(b.sections), "kept", len(out))
	b.sections = nil

	return out
}
