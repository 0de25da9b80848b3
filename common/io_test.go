package common_test

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4nd3r5on/go-comsolfile/common"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    string
		wantLen int64
		wantErr bool
	}{
		{
			name:    "simple line with LF",
			data:    "hello\n",
			want:    "hello",
			wantLen: 6,
		},
		{
			name:    "simple line with CRLF",
			data:    "hello\r\n",
			want:    "hello",
			wantLen: 7,
		},
		{
			name:    "line without newline",
			data:    "hello",
			want:    "hello",
			wantLen: 5,
		},
		{
			name:    "empty line with LF",
			data:    "\n",
			want:    "",
			wantLen: 1,
		},
		{
			name:    "empty line with CRLF",
			data:    "\r\n",
			want:    "",
			wantLen: 2,
		},
		{
			name:    "empty string",
			data:    "",
			wantErr: true, // EOF
		},
		{
			name:    "line with spaces",
			data:    "  1 2 3  \n",
			want:    "  1 2 3  ",
			wantLen: 10,
		},
		{
			name:    "unicode content",
			data:    "hello 世界\n",
			want:    "hello 世界",
			wantLen: 13, // "hello " (6) + "世界" (6) + "\n" (1)
		},
		{
			name:    "very long line",
			data:    strings.Repeat("1 ", 5000) + "\n",
			want:    strings.Repeat("1 ", 5000),
			wantLen: 10001,
		},
		{
			name:    "multiple lines - only first read",
			data:    "first\nsecond\nthird\n",
			want:    "first",
			wantLen: 6,
		},
		{
			name:    "lone CR ends the line",
			data:    "hello\rworld\n",
			want:    "hello",
			wantLen: 6,
		},
		{
			name:    "trailing lone CR",
			data:    "hello\r",
			want:    "hello",
			wantLen: 6,
		},
		{
			name:    "form feed",
			data:    "hello\fworld",
			want:    "hello",
			wantLen: 6,
		},
		{
			name:    "next line",
			data:    "hello\u0085world",
			want:    "hello",
			wantLen: 7,
		},
		{
			name:    "line separator",
			data:    "hello\u2028world",
			want:    "hello",
			wantLen: 8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotLen, gotErr := common.ReadLine(
				bufio.NewReader(strings.NewReader(tt.data)),
			)
			if tt.wantErr {
				require.Error(t, gotErr)
				return
			}

			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, string(got))
			assert.Equal(t, tt.wantLen, gotLen)
		})
	}
}

func TestReadLineSequence(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("a\r\nb\rc\n\nd"))

	var lines []string
	for {
		line, _, err := common.ReadLine(r)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		lines = append(lines, string(line))
	}

	assert.Equal(t, []string{"a", "b", "c", "", "d"}, lines)
}
