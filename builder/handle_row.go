package builder

import (
	"errors"

	"github.com/4nd3r5on/go-comsolfile/common"
)

func (b *Builder) handleRow(lineIdx int64, parsedLine common.ParsedLine) {
	if b.block == nil {
		b.block = &BlockState{StartLine: lineIdx}
		b.Logger.Debug("matrix started", "line", lineIdx, "ncol", len(parsedLine.Row))
	}

	b.block.Rows = append(b.block.Rows, parsedLine.Row)
	b.collecting = true
}

// finalize turns the open block into a section and stops collecting.
// A ragged block is dropped with a warning.
// The description buffer is left for the caller to reset.
func (b *Builder) finalize() {
	block := b.block
	b.block = nil
	b.collecting = false

	if block == nil {
		return
	}

	matrix, err := common.NewMatrix(block.Rows)
	if err != nil {
		if errors.Is(err, common.ErrRaggedMatrix) {
			b.Logger.Warn("dropping ragged matrix", "line", block.StartLine, "rows", len(block.Rows), "error", err)
		}
		return
	}

	section := common.Section{
		Description: common.JoinNonBlank(b.description),
		Matrix:      matrix,
		NCol:        matrix.Cols(),
	}
	b.sections = append(b.sections, section)

	b.Logger.Debug("section finalized",
		"line", block.StartLine,
		"rows", matrix.Rows(),
		"ncol", section.NCol,
		"kind", matrix.Kind.String())
}
