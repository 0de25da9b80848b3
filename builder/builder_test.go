package builder_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4nd3r5on/go-comsolfile/builder"
	"github.com/4nd3r5on/go-comsolfile/common"
	"github.com/4nd3r5on/go-comsolfile/parser"
)

var discard = slog.New(slog.DiscardHandler)

func build(t *testing.T, input string, options ...builder.Option) []common.Section {
	t.Helper()

	s := parser.NewStreamParser(nil, strings.NewReader(input), parser.WithLogger(discard))
	options = append([]builder.Option{builder.SetLogger(discard)}, options...)

	sections, err := builder.FromStream(s, options...)
	require.NoError(t, err)

	return sections
}

func intMatrix(rows ...[]int64) common.Matrix {
	return common.Matrix{Kind: common.KindInt, Ints: rows}
}

func floatMatrix(rows ...[]float64) common.Matrix {
	return common.Matrix{Kind: common.KindFloat, Floats: rows}
}

func TestFromStream(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []common.Section
	}{
		{
			name:  "empty input",
			input: "",
			want:  []common.Section{},
		},
		{
			name:  "only text",
			input: "# Model\nsome text\n\n",
			want:  []common.Section{},
		},
		{
			name:  "single row block is dropped",
			input: "# Header B\n7.5 8 9\n",
			want:  []common.Section{},
		},
		{
			name:  "blank line closes matrix",
			input: "# Header A\n1 2 3\n4 5 6\n\n# Header B\n7.5 8 9\n",
			want: []common.Section{
				{
					Description: "Header A",
					Matrix:      intMatrix([]int64{1, 2, 3}, []int64{4, 5, 6}),
					NCol:        3,
				},
			},
		},
		{
			name:  "end of input closes matrix",
			input: "# Grid\n1.5 2\n3 4",
			want: []common.Section{
				{
					Description: "Grid",
					Matrix:      floatMatrix([]float64{1.5, 2}, []float64{3, 4}),
					NCol:        2,
				},
			},
		},
		{
			name:  "comment closes matrix and opens next description",
			input: "# A\n1 2\n3 4\n# B\n5 6\n7 8\n",
			want: []common.Section{
				{
					Description: "A\nB",
					Matrix:      intMatrix([]int64{1, 2}, []int64{3, 4}),
					NCol:        2,
				},
				{
					Description: "B",
					Matrix:      intMatrix([]int64{5, 6}, []int64{7, 8}),
					NCol:        2,
				},
			},
		},
		{
			name:  "free text and blank lines join into description",
			input: "# Model: heat\n\nDescription: temperature\n   \n# Coordinates\n0 0\n1 1\n",
			want: []common.Section{
				{
					Description: "Model: heat\nDescription: temperature\nCoordinates",
					Matrix:      intMatrix([]int64{0, 0}, []int64{1, 1}),
					NCol:        2,
				},
			},
		},
		{
			name:  "text inside matrix is ignored",
			input: "# M\n1 2\nnot a row\n3 4\n",
			want: []common.Section{
				{
					Description: "M",
					Matrix:      intMatrix([]int64{1, 2}, []int64{3, 4}),
					NCol:        2,
				},
			},
		},
		{
			name:  "blank line clears description",
			input: "# A\n1\n2\n\n3 4\n5 6\n",
			want: []common.Section{
				{
					Description: "A",
					Matrix:      intMatrix([]int64{1}, []int64{2}),
					NCol:        1,
				},
				{
					Description: "",
					Matrix:      intMatrix([]int64{3, 4}, []int64{5, 6}),
					NCol:        2,
				},
			},
		},
		{
			name:  "version stamp before data",
			input: "# Version\n6.1\n# Elements\n1 2 3\n4 5 6\n7 8 9\n",
			want: []common.Section{
				{
					Description: "Elements",
					Matrix:      intMatrix([]int64{1, 2, 3}, []int64{4, 5, 6}, []int64{7, 8, 9}),
					NCol:        3,
				},
			},
		},
		{
			name:  "comment markers and whitespace stripped",
			input: "  ##   Nodes  \n\t1 2\n3 4\t\n",
			want: []common.Section{
				{
					Description: "Nodes",
					Matrix:      intMatrix([]int64{1, 2}, []int64{3, 4}),
					NCol:        2,
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, build(t, tt.input))
		})
	}
}

func TestFromStreamRaggedBlockDropped(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))

	input := "# Good\n1 2\n3 4\n\n# Ragged\n1 2 3\n4 5\n\n# Also good\n5 6\n7 8\n"
	s := parser.NewStreamParser(nil, strings.NewReader(input), parser.WithLogger(discard))

	sections, err := builder.FromStream(s, builder.SetLogger(logger))
	require.NoError(t, err)

	require.Len(t, sections, 2)
	assert.Equal(t, "Good", sections[0].Description)
	assert.Equal(t, "Also good", sections[1].Description)
	assert.Contains(t, logs.String(), "dropping ragged matrix")
}

func TestFromStreamInvariants(t *testing.T) {
	input := strings.Join([]string{
		"# Version 6.1",
		"6 1",
		"",
		"# Nodes",
		"0 0 0",
		"1 0 0",
		"0 1 0",
		"# Elements",
		"1 2 3",
		"2 3 4",
		"",
		"# Temperature (K)",
		"293.15",
		"300.5",
		"310",
	}, "\n")

	sections := build(t, input)
	require.Len(t, sections, 3)

	for _, section := range sections {
		rows, cols := section.Matrix.Dims()
		assert.GreaterOrEqual(t, rows, 2)
		assert.Equal(t, cols, section.NCol)
		for i := range rows {
			for j := range cols {
				_ = section.Matrix.At(i, j) // in range for every row
			}
		}
	}

	assert.Equal(t, common.KindFloat, sections[2].Matrix.Kind)
}

func TestFromStreamIdempotent(t *testing.T) {
	input := "# A\n1 2\n3 4\n# B\n0.5 1\n2 3\n"
	assert.Equal(t, build(t, input), build(t, input))
}

func TestSetMinRows(t *testing.T) {
	sections := build(t, "# One\n1 2 3\n", builder.SetMinRows(1))
	require.Len(t, sections, 1)
	assert.Equal(t, "One", sections[0].Description)
}

func TestHandleParsedLine(t *testing.T) {
	b := builder.New(builder.SetLogger(discard))
	p := parser.New(parser.WithLogger(discard))

	b.HandleParsedLine(1, p.ParseLine("# Header"))
	assert.False(t, b.Collecting())

	b.HandleParsedLine(2, p.ParseLine("1 2"))
	assert.True(t, b.Collecting())

	b.HandleParsedLine(3, p.ParseLine("3 4"))
	b.HandleParsedLine(4, p.ParseLine(""))
	assert.False(t, b.Collecting())

	sections := b.HandleEOF(4)
	require.Len(t, sections, 1)
	assert.Equal(t, "Header", sections[0].Description)
}
