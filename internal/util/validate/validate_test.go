package validate

import (
	"testing"
)

func TestIconFileName(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"icon.png", true},
		{"adaptive-icon.png", true},
		{"favicon.ico", true},
		{"splash_icon.WEBP", true},
		{"logo.svg", true},
		{"icon", false},
		{"icon.txt", false},
		{"", false},
		{".png", false},
		{"assets/icon.png", false},
		{"..icon.png", false},
		{"icon..png", false},
		{"-icon.png", false},
		{"icon .png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IconFileName(tt.name)
			if result != tt.expected {
				t.Errorf("IconFileName(%q) = %v, expected %v", tt.name, result, tt.expected)
			}
		})
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		color    string
		expected bool
	}{
		{"#4A90E2", true},
		{"#4a90e2", true},
		{"#fff", true},
		{"4A90E2", false},
		{"#4A90E", false},
		{"#GGGGGG", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			result := HexColor(tt.color)
			if result != tt.expected {
				t.Errorf("HexColor(%q) = %v, expected %v", tt.color, result, tt.expected)
			}
		})
	}
}

func TestOneOf(t *testing.T) {
	values := []string{"text", "table", "json"}

	tests := []struct {
		value    string
		expected bool
	}{
		{"text", true},
		{"table", true},
		{"json", true},
		{"xml", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			result := OneOf(tt.value, values)
			if result != tt.expected {
				t.Errorf("OneOf(%q, %v) = %v, expected %v", tt.value, values, result, tt.expected)
			}
		})
	}
}

func TestRequired(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"text", true},
		{"a", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			result := Required(tt.text)
			if result != tt.expected {
				t.Errorf("Required(%q) = %v, expected %v", tt.text, result, tt.expected)
			}
		})
	}
}

func TestIsNumber(t *testing.T) {
	tests := []struct {
		value    int
		min      int
		max      int
		expected bool
	}{
		{32, 1, 16384, true},
		{1, 1, 16384, true},
		{16384, 1, 16384, true},
		{0, 1, 16384, false},
		{16385, 1, 16384, false},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			result := IsNumber(tt.value, tt.min, tt.max)
			if result != tt.expected {
				t.Errorf("IsNumber(%d, %d, %d) = %v, expected %v", tt.value, tt.min, tt.max, result, tt.expected)
			}
		})
	}
}

func TestIsPositiveNumber(t *testing.T) {
	tests := []struct {
		value    int
		expected bool
	}{
		{1, true},
		{1024, true},
		{0, false},
		{-1, false},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			result := IsPositiveNumber(tt.value)
			if result != tt.expected {
				t.Errorf("IsPositiveNumber(%d) = %v, expected %v", tt.value, result, tt.expected)
			}
		})
	}
}
