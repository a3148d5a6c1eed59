package errors

import (
	"strings"
	"testing"
)

func TestValidateLightCount(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"one", 1, false},
		{"typical", 10, false},
		{"max", MaxLightCount, false},

		{"zero", 0, true},
		{"negative", -3, true},
		{"too large", MaxLightCount + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLightCount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLightCount(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidLightCount) {
				t.Errorf("ValidateLightCount(%d) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidLightCount)
			}
		})
	}
}

func TestValidateAlgorithm(t *testing.T) {
	known := []string{"left-to-right", "lawnmower"}

	tests := []struct {
		input   string
		wantErr bool
	}{
		{"left-to-right", false},
		{"lawnmower", false},
		{"Lawnmower", true}, // case-sensitive
		{"bubble", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateAlgorithm(tt.input, known)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateAlgorithm(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}

	err := ValidateAlgorithm("bubble", known)
	if !strings.Contains(err.Error(), "left-to-right, lawnmower") {
		t.Errorf("error should list valid algorithms: %v", err)
	}
}

func TestValidateFormat(t *testing.T) {
	known := []string{"text", "json", "svg"}

	tests := []struct {
		input   string
		wantErr bool
	}{
		{"text", false},
		{"svg", false},
		{"SVG", true},
		{"png", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.input, known)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateRowString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"spaced", "D L D L", false},
		{"compact", "DLDL", false},
		{"tabs and newline", "D\tL\nD L", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"null byte", "D\x00L", true},
		{"control char", "D\x01L", true},
		{"too long", strings.Repeat("D", 4*MaxLightCount+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRowString(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRowString(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
