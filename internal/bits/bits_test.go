package bits

import (
	"errors"
	"testing"
)

func TestTake(t *testing.T) {
	tests := []struct {
		name   string
		number uint64
		start  int
		length int
		want   uint64
	}{
		{name: "top nibble", number: 0xF000_0000_0000_0000, start: 0, length: 4, want: 0xF},
		{name: "bottom nibble", number: 0xA, start: 60, length: 4, want: 0xA},
		{name: "middle byte", number: 0x00FF_0000_0000_0000, start: 8, length: 8, want: 0xFF},
		{name: "whole word", number: 0xDEAD_BEEF_CAFE_F00D, start: 0, length: 64, want: 0xDEAD_BEEF_CAFE_F00D},
		{name: "single bit set", number: 1 << 63, start: 0, length: 1, want: 1},
		{name: "single bit clear", number: 1 << 62, start: 0, length: 1, want: 0},
		{name: "zero word", number: 0, start: 17, length: 13, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Take(tt.number, tt.start, tt.length)
			if err != nil {
				t.Fatalf("Take(%#x, %d, %d) error: %v", tt.number, tt.start, tt.length, err)
			}
			if got != tt.want {
				t.Errorf("Take(%#x, %d, %d) = %#x, want %#x", tt.number, tt.start, tt.length, got, tt.want)
			}
		})
	}
}

func TestTakeRejectsInvalidRanges(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		length  int
		wantErr error
	}{
		{name: "negative start", start: -1, length: 4, wantErr: ErrNegativeStart},
		{name: "start past word", start: 64, length: 1, wantErr: ErrStartTooLarge},
		{name: "zero length", start: 0, length: 0, wantErr: ErrBadLength},
		{name: "negative length", start: 0, length: -2, wantErr: ErrBadLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Take(1, tt.start, tt.length); !errors.Is(err, tt.wantErr) {
				t.Errorf("Take(1, %d, %d) error = %v, want %v", tt.start, tt.length, err, tt.wantErr)
			}
		})
	}

	// Length overrunning the word for a given start has a dynamic message.
	if _, err := Take(1, 60, 5); err == nil {
		t.Error("Take(1, 60, 5) succeeded, want error")
	}
}
