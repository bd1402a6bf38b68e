package cmd

import "testing"

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"1", 1, false},
		{"0.5", 0.5, false},
		{"-3", -3, false},
		{"30", 30, false},
		{"abc", 0, true},
		{"", 0, true},
		{"1s", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseSeconds(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSeconds(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseSeconds(%q) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}
