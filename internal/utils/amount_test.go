package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"100", "100", true},
		{" $1,250.50 ", "1250.5", true},
		{"MXN 300", "300", true},
		{"-45.10", "-45.1", true},
		{"", "0", false},
		{"pendiente", "0", false},
		{"1.2.3", "0", false},
		{"50%", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestSumAmounts(t *testing.T) {
	total, unparsed := SumAmounts([]string{"100", "$1,000.25", "", "n/a!", "0.5"})
	assert.Equal(t, "1100.75", total)
	assert.Equal(t, 1, unparsed)

	total, unparsed = SumAmounts(nil)
	assert.Equal(t, "0.00", total)
	assert.Equal(t, 0, unparsed)
}
