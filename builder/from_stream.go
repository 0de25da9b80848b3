package builder

import (
	"errors"
	"fmt"
	"io"

	"github.com/4nd3r5on/go-comsolfile/common"
)

// FromStream drains a parser stream and returns the finished sections.
// Only read errors from the stream are returned.
func FromStream(s common.ParserStream, options ...Option) ([]common.Section, error) {
	b := New(options...)

	for {
		lineIdx := s.GetLineIdx()
		parsedLine, err := s.Next()

		if errors.Is(err, io.EOF) {
			return b.HandleEOF(lineIdx), nil
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", lineIdx+1, err)
		}

		b.HandleParsedLine(s.GetLineIdx(), parsedLine)
	}
}
