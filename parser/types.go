package parser

import "regexp"

// NumericRowRe matches a line made only of whitespace separated decimal or
// scientific-notation numbers.
var NumericRowRe = regexp.MustCompile(
	`^[-+]?\d+(\.\d+)?([eE][-+]?\d+)?(\s+[-+]?\d+(\.\d+)?([eE][-+]?\d+)?)*$`,
)
