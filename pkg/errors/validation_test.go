package errors

import (
	"math"
	"testing"
)

func TestRequirePositive(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"positive", 4.25, false},
		{"tiny", 1e-9, false},

		{"zero", 0, true},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequirePositive("wall.thickness", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("RequirePositive(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && GetField(err) != "wall.thickness" {
				t.Errorf("GetField() = %q, want wall.thickness", GetField(err))
			}
		})
	}
}

func TestRequireNonNegative(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 1.5, false},
		{"negative", -0.1, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireNonNegative("pocket_door.offset_from_right", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("RequireNonNegative(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestRequireSpan(t *testing.T) {
	tests := []struct {
		name    string
		lo, hi  float64
		wantErr bool
	}{
		{"inside", 24, 84, false},
		{"touching edges", 0, 108, false},
		{"left overflow", -1, 50, true},
		{"right overflow", 60, 109, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireSpan("window", tt.lo, tt.hi, 0, 108)
			if (err != nil) != tt.wantErr {
				t.Errorf("RequireSpan(%v, %v) error = %v, wantErr %v", tt.lo, tt.hi, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidGeometry) {
				t.Errorf("RequireSpan() code = %v, want %v", GetCode(err), ErrCodeInvalidGeometry)
			}
		})
	}
}

func TestValidateOutputName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "garage_office", false},
		{"with dash", "garage-office", false},
		{"with dot", "office.v2", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"slash", "renders/office", true},
		{"backslash", "renders\\office", true},
		{"hidden", ".office", true},
		{"control char", "office\x01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
