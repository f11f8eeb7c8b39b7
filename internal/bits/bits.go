// Package bits extracts bit fields from 64-bit words. The start index
// counts from the most significant bit, so Take(n, 0, 4) returns the
// top nibble.
package bits

import (
	"errors"
	"fmt"
)

// WordSize is the width of the numbers the lab operates on.
const WordSize = 64

var (
	ErrNegativeStart = errors.New("the starting index cannot be less than zero")
	ErrStartTooLarge = fmt.Errorf("the starting index cannot be greater than %d", WordSize-1)
	ErrBadLength     = errors.New("the length of the binary fragment cannot be less than, or equal to, zero")
)

// Take returns the length-bit field of number beginning at the
// MSB-relative start index, right-aligned in the result.
func Take(number uint64, start, length int) (uint64, error) {
	if start < 0 {
		return 0, ErrNegativeStart
	}
	if start > WordSize-1 {
		return 0, ErrStartTooLarge
	}
	if length <= 0 {
		return 0, ErrBadLength
	}
	if length > WordSize-start {
		return 0, fmt.Errorf("the length of the binary fragment cannot be greater than %d for a starting index of %d", WordSize-start, start)
	}

	return number << start >> (WordSize - length), nil
}
