package cmd

import "testing"

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2026-08-30", false},
		{"1970-01-01", false},
		{"2026-8-30", true},
		{"30-08-2026", true},
		{"yesterday", true},
		{"", true},
	}

	for _, tt := range tests {
		_, err := parseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
