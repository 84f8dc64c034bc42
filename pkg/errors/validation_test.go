package errors

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "deck", false},
		{"with dashes", "seating-plan", false},
		{"with dots", "v1.2", false},
		{"digits first", "2024-draw", false},
		{"empty", "", true},
		{"traversal", "a..b", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"leading dot", ".hidden", true},
		{"control char", "a\x00b", true},
		{"space", "a b", true},
		{"too long", strings.Repeat("a", 129), true},
		{"max length", strings.Repeat("a", 128), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateLabels(t *testing.T) {
	tests := []struct {
		name    string
		labels  []string
		length  int
		wantErr bool
	}{
		{"none", nil, 4, false},
		{"exact", []string{"a", "b", "c"}, 3, false},
		{"too few", []string{"a", "b"}, 3, true},
		{"too many", []string{"a", "b", "c", "d"}, 3, true},
		{"duplicate", []string{"a", "a", "c"}, 3, true},
		{"blank", []string{"a", " ", "c"}, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabels(tt.labels, tt.length)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabels(%v, %d) error = %v, wantErr %v", tt.labels, tt.length, err, tt.wantErr)
			}
		})
	}
}
