package csvtab

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain fields",
			line: "D001,Bad Buddy,2021",
			want: []string{"D001", "Bad Buddy", "2021"},
		},
		{
			name: "quoted field keeps its commas",
			line: `L001,Wat Arun,"158 Thanon Wang Doem, Bangkok 10600",13.74`,
			want: []string{"L001", "Wat Arun", "158 Thanon Wang Doem, Bangkok 10600", "13.74"},
		},
		{
			name: "quotes stripped from value",
			line: `a,"b",c`,
			want: []string{"a", "b", "c"},
		},
		{
			name: "fields trimmed",
			line: "  a , b ,c  ",
			want: []string{"a", "b", "c"},
		},
		{
			name: "quote in the middle of a field",
			line: `a,say "hi" now,b`,
			want: []string{"a", "say hi now", "b"},
		},
		{
			name: "unbalanced quote swallows the rest of the line",
			line: `a,"b,c`,
			want: []string{"a", "b,c"},
		},
		{
			name: "empty trailing field",
			line: "a,b,",
			want: []string{"a", "b", ""},
		},
		{
			name: "blank line yields no fields",
			line: "   ",
			want: nil,
		},
		{
			name: "empty line yields no fields",
			line: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLine(tt.line))
		})
	}
}

// Serializing fields with a standard CSV writer and splitting them back
// preserves every value, including embedded delimiters.
func TestSplitLineRoundTrip(t *testing.T) {
	rows := [][]string{
		{"D001", "Bad Buddy", "แค่เพื่อนครับเพื่อน", "2021"},
		{"L001", "Wat Arun", "158 Thanon Wang Doem, Bangkok 10600", "13.7437"},
		{"D001", "L001", "Ep 5 temple visit, sunset scene", "1", "0"},
	}

	for _, row := range rows {
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		require.NoError(t, w.Write(row))
		w.Flush()
		require.NoError(t, w.Error())

		line := string(bytes.TrimRight(buf.Bytes(), "\n"))
		assert.Equal(t, row, SplitLine(line))
	}
}
