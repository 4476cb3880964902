package errors

import "testing"

func TestValidateSheetFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "slime.json", false},
		{"name with spaces", "player run.json", false},
		{"empty", "", true},
		{"path separator", "assets/slime.json", true},
		{"backslash", `assets\slime.json`, true},
		{"parent traversal", "..slime.json", true},
		{"hidden file", ".slime.json", true},
		{"null byte", "slime\x00.json", true},
		{"control character", "slime\n.json", true},
		{"too long", string(make([]byte, 300)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSheetFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSheetFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}
