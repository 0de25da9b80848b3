package parser

import (
	"strings"

	"github.com/4nd3r5on/go-comsolfile/common"
)

type Parser struct {
	*Config
}

func New(options ...Option) *Parser {
	return &Parser{Config: newConfig(options...)}
}

// ParseLine classifies a single line of a COMSOL export.
// Surrounding whitespace is trimmed before classification. Classification
// never fails: anything that isn't a comment, a numeric row or blank is text.
func (p *Parser) ParseLine(line string) common.ParsedLine {
	line = strings.TrimSpace(line)

	switch DetectLineType(line, p.CommentMarker) {
	case common.LineTypeComment:
		return p.handleCommentLine(line)
	case common.LineTypeNumeric:
		return p.handleNumericLine(line)
	case common.LineTypeBlank:
		return common.ParsedLine{Type: common.LineTypeBlank}
	default:
		return p.handleTextLine(line)
	}
}

// handleCommentLine strips the markers so only the description text is kept
func (p *Parser) handleCommentLine(line string) common.ParsedLine {
	return common.ParsedLine{
		Type:    common.LineTypeComment,
		RawLine: line,
		Content: common.TrimMarker(line, p.CommentMarker),
	}
}

func (p *Parser) handleNumericLine(line string) common.ParsedLine {
	row, err := ParseNumericRow(line)
	if err != nil {
		// grammar and strconv disagree, keep the line as text
		p.Logger.Debug("numeric row rejected", "line", line, "error", err)
		return p.handleTextLine(line)
	}

	return common.ParsedLine{
		Type:    common.LineTypeNumeric,
		RawLine: line,
		Row:     row,
	}
}

func (p *Parser) handleTextLine(line string) common.ParsedLine {
	return common.ParsedLine{
		Type:    common.LineTypeText,
		RawLine: line,
		Content: line,
	}
}
