package util

import (
	"bytes"
	"testing"
)

func TestPrintTable(t *testing.T) {
	tests := []struct {
		name     string
		table    [][]string
		expected string
	}{
		{
			name:     "empty table",
			table:    nil,
			expected: "",
		},
		{
			name: "aligned columns",
			table: [][]string{
				{"Name", "Size"},
				{"favicon.png", "32x32"},
				{"icon.png", "1024x1024"},
			},
			expected: "Name         Size\n" +
				"favicon.png  32x32\n" +
				"icon.png     1024x1024\n",
		},
		{
			name: "extra cells ignored",
			table: [][]string{
				{"A"},
				{"b", "ignored"},
			},
			expected: "A\nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := PrintTable(&buf, tt.table); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("PrintTable() = %q, expected %q", buf.String(), tt.expected)
			}
		})
	}
}
