package builder

import (
	"github.com/4nd3r5on/go-comsolfile/common"
)

// BlockState is the matrix currently being collected.
type BlockState struct {
	StartLine int64
	Rows      [][]float64
}

type Builder struct {
	*Config

	// builder state
	collecting  bool
	block       *BlockState
	description []string
	// output
	sections []common.Section
}

func New(options ...Option) *Builder {
	return &Builder{
		Config: newConfig(options...),
	}
}

// Collecting reports whether a matrix block is open.
func (b *Builder) Collecting() bool { return b.collecting }

func (b *Builder) HandleParsedLine(lineIdx int64, parsedLine common.ParsedLine) {
	switch parsedLine.Type {
	case common.LineTypeComment:
		b.handleComment(lineIdx, parsedLine)
	case common.LineTypeNumeric:
		b.handleRow(lineIdx, parsedLine)
	case common.LineTypeBlank:
		b.handleBlank(lineIdx)
	case common.LineTypeText:
		b.handleText(lineIdx, parsedLine)
	}
}

// handleComment adds the comment to the description. A comment right after
// a matrix closes it, and the same comment opens the next description.
func (b *Builder) handleComment(lineIdx int64, parsedLine common.ParsedLine) {
	b.description = append(b.description, parsedLine.Content)

	if !b.collecting || b.block == nil || len(b.block.Rows) == 0 {
		return
	}

	b.Logger.Debug("comment closes matrix", "line", lineIdx)
	b.finalize()
	b.description = []string{parsedLine.Content}
}

func (b *Builder) handleBlank(lineIdx int64) {
	if !b.collecting {
		// dropped when the description is joined
		b.description = append(b.description, "")
		return
	}

	b.Logger.Debug("blank line closes matrix", "line", lineIdx)
	if b.block != nil && len(b.block.Rows) > 0 {
		b.finalize()
	}
	b.reset()
}

func (b *Builder) handleText(lineIdx int64, parsedLine common.ParsedLine) {
	if b.collecting {
		b.Logger.Debug("skipping text inside matrix", "line", lineIdx, "text", parsedLine.RawLine)
		return
	}

	b.description = append(b.description, parsedLine.Content)
}

func (b *Builder) reset() {
	b.collecting = false
	b.block = nil
	b.description = nil
}
