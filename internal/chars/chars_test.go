package chars

import (
	"strings"
	"testing"
)

func TestEcho(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		max       int
		wantCount int
		wantOut   string
	}{
		{
			name:      "exact count",
			input:     "abc",
			max:       3,
			wantCount: 3,
			wantOut:   "a\nb\nc\n",
		},
		{
			name:      "extra input is left unread",
			input:     "abcdef",
			max:       2,
			wantCount: 2,
			wantOut:   "a\nb\n",
		},
		{
			name:      "short input truncates with a report",
			input:     "ab",
			max:       5,
			wantCount: 2,
			wantOut:   "a\nb\nfewer than 5 characters entered, number of characters set to 2\n",
		},
		{
			name:      "empty input",
			input:     "",
			max:       3,
			wantCount: 0,
			wantOut:   "fewer than 3 characters entered, number of characters set to 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			got, err := Echo(strings.NewReader(tt.input), &out, tt.max)
			if err != nil {
				t.Fatalf("Echo() error: %v", err)
			}
			if got != tt.wantCount {
				t.Errorf("Echo() = %d, want %d", got, tt.wantCount)
			}
			if out.String() != tt.wantOut {
				t.Errorf("output = %q, want %q", out.String(), tt.wantOut)
			}
		})
	}
}
