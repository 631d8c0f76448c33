package brand

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "empty uses brand colour", input: "", expected: "#4a90e2"},
		{name: "brand colour", input: Color, expected: "#4a90e2"},
		{name: "lower case", input: "#ff0000", expected: "#ff0000"},
		{name: "short form", input: "#0f0", expected: "#00ff00"},
		{name: "missing hash", input: "4A90E2", wantErr: true},
		{name: "bad digits", input: "#zzzzzz", wantErr: true},
		{name: "wrong length", input: "#1234", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected an error, got %q", tt.input, result)
				}
				if !Error.Has(err) {
					t.Errorf("Parse(%q) error %v is not a brand error", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("Parse(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
