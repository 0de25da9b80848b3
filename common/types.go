//revive:disable:var-naming
package common

//revive:enable:var-naming

// Interfaces

type Parser interface {
	ParseLine(line string) ParsedLine
}

type ParserStream interface {
	GetLineIdx() int64
	Next() (ParsedLine, error) // parses until io.EOF
}

// Parser

type LineType int

const (
	LineTypeBlank   LineType = iota
	LineTypeComment          // Only if line starts with the comment marker
	LineTypeNumeric          // Whitespace separated numbers and nothing else
	LineTypeText
)

func (t LineType) String() string {
	switch t {
	case LineTypeBlank:
		return "blank"
	case LineTypeComment:
		return "comment"
	case LineTypeNumeric:
		return "numeric"
	case LineTypeText:
		return "text"
	default:
		return "unknown"
	}
}

// ParsedLine represents a classified line from a COMSOL export.
type ParsedLine struct {
	Type    LineType
	RawLine string // line with surrounding whitespace trimmed

	// Comment text without markers for comments, RawLine for text lines
	Content string
	Row     []float64 // only for LineTypeNumeric
}

// Builder

// Section is a description and the matrix that follows it.
type Section struct {
	Description string
	Matrix      Matrix
	NCol        int // cached Matrix.Cols()
}
