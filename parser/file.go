package parser

import (
	"bufio"
	"io"

	"github.com/4nd3r5on/go-comsolfile/common"
)

// StreamParser reads lines from a decoded reader and classifies them.
type StreamParser struct {
	common.Parser

	reader     common.Reader
	CurrentIdx int64
}

// NewStreamParser wraps r. r must yield valid UTF-8, see common.NewDecodingReader.
// If p is nil, or a nil *Parser, a Parser is built from options.
func NewStreamParser(p common.Parser, r io.Reader, options ...Option) *StreamParser {
	if typed, ok := p.(*Parser); p == nil || (ok && typed == nil) {
		p = New(options...)
	}

	reader, ok := r.(common.Reader)
	if !ok {
		reader = bufio.NewReader(r)
	}

	return &StreamParser{
		Parser:     p,
		reader:     reader,
		CurrentIdx: 0,
	}
}

func (p *StreamParser) Next() (common.ParsedLine, error) {
	line, _, err := common.ReadLine(p.reader)
	if err != nil {
		return common.ParsedLine{}, err
	}

	p.CurrentIdx++

	return p.ParseLine(string(line)), nil
}

func (p *StreamParser) GetLineIdx() int64 { return p.CurrentIdx }
