package config

import "testing"

func TestCheckRequires(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		version    string
		wantErr    bool
	}{
		{"no constraint", "", "1.0.0", false},
		{"satisfied", ">= 1.0.0", "1.2.0", false},
		{"v prefix", "^1.0", "v1.4.2", false},
		{"too old", ">= 2.0.0", "1.9.9", true},
		{"dev build skips", ">= 2.0.0", "dev", false},
		{"bad constraint", "not a constraint!", "1.0.0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRequires(tt.constraint, tt.version)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckRequires(%q, %q) error = %v, wantErr %v", tt.constraint, tt.version, err, tt.wantErr)
			}
		})
	}
}
