package ingest_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/salesmaster_cloud/internal/core/ingest"
	"github.com/stretchr/testify/assert"
)

func TestParse_RectangularGrid(t *testing.T) {
	grid := [][]string{
		{"Cliente", "Vendedor", "Monto"},
		{"Ana", "Juan", "100"},
		{"Beto", "Maria", "250.50"},
		{"Carla", "Juan", "0"},
	}
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = strings.Join(row, ",")
	}

	assert.Equal(t, grid, ingest.Parse(strings.Join(lines, "\n")))
	assert.Equal(t, grid, ingest.Parse(strings.Join(lines, "\r\n")+"\r\n"))
	assert.Equal(t, grid, ingest.Parse(strings.Join(lines, "\r")))
}

func TestParse_CSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "escaped quotes",
			input: `"He said ""hi"""`,
			want:  [][]string{{`He said "hi"`}},
		},
		{
			name:  "delimiter inside quotes",
			input: "\"a,b\",c",
			want:  [][]string{{"a,b", "c"}},
		},
		{
			name:  "line break inside quotes",
			input: "\"line1\nline2\",x\ny,z",
			want:  [][]string{{"line1\nline2", "x"}, {"y", "z"}},
		},
		{
			name:  "trailing blank lines suppressed",
			input: "a,b\n\n\r\n\n",
			want:  [][]string{{"a", "b"}},
		},
		{
			name:  "row of empty cells is kept",
			input: "a,b\n,\n",
			want:  [][]string{{"a", "b"}, {"", ""}},
		},
		{
			name:  "unterminated quote flushes content",
			input: "a,\"open cell\nstill open",
			want:  [][]string{{"a", "open cell\nstill open"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  [][]string{},
		},
		{
			name:  "header only",
			input: "Cliente,Vendedor\n",
			want:  [][]string{{"Cliente", "Vendedor"}},
		},
		{
			name:  "quote in the middle of a cell toggles quoting",
			input: "ab\"c,d\"e,f",
			want:  [][]string{{"abc,de", "f"}},
		},
		{
			name:  "utf-8 passes through",
			input: "Teléfono,Señor\n",
			want:  [][]string{{"Teléfono", "Señor"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ingest.Parse(tt.input))
		})
	}
}

func TestParse_TSV(t *testing.T) {
	input := "Cliente\tMonto\r\nAna\t\"100\"\nBeto\t1,000\n\n"
	want := [][]string{
		{"Cliente", "Monto"},
		{"Ana", `"100"`},
		{"Beto", "1,000"},
	}
	assert.Equal(t, want, ingest.Parse(input), "tab input splits on tabs only and keeps quotes and commas literally")
}
