package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/4nd3r5on/go-comsolfile/common"
)

// IsLineComment checks if a trimmed line starts with marker
func IsLineComment(line string, marker rune) bool {
	return strings.HasPrefix(line, string(marker))
}

// IsNumericRow checks if a trimmed line is a row of numbers and nothing else
func IsNumericRow(line string) bool {
	return NumericRowRe.MatchString(line)
}

// DetectLineType classifies a trimmed line.
// Precedence: comment, numeric row, blank, text.
func DetectLineType(line string, marker rune) common.LineType {
	switch {
	case IsLineComment(line, marker):
		return common.LineTypeComment
	case IsNumericRow(line):
		return common.LineTypeNumeric
	case line == "":
		return common.LineTypeBlank
	default:
		return common.LineTypeText
	}
}

// ParseNumericRow converts a line accepted by IsNumericRow to its values.
// Values beyond float64 range come back as ±Inf.
func ParseNumericRow(line string) ([]float64, error) {
	fields := strings.Fields(line)
	row := make([]float64, 0, len(fields))

	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("invalid number %q: %w", field, err)
		}
		row = append(row, v)
	}

	return row, nil
}
