// Package binary converts strings of binary digits to and from unsigned integers.
package binary

import (
	"errors"
	"strings"
)

var (
	ErrNotBinary = errors.New("should contain only 0 and 1")
	ErrOverflow  = errors.New("binary number does not fit in 64 bits")
)

// IsBinary reports whether s is a non-empty string made only of '0' and '1'.
func IsBinary(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

// ToDecimal returns the value of the binary string s.
func ToDecimal(s string) (uint64, error) {
	if !IsBinary(s) {
		return 0, ErrNotBinary
	}

	digits := strings.TrimLeft(s, "0")
	if len(digits) > 64 {
		return 0, ErrOverflow
	}

	var dec uint64
	for i := 0; i < len(digits); i++ {
		dec = dec<<1 | uint64(digits[i]-'0')
	}
	return dec, nil
}

// FromDecimal encodes n in base 2 without leading zeros. Zero encodes as "0".
func FromDecimal(n uint64) string {
	if n == 0 {
		return "0"
	}

	var buf [64]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = '0' + byte(n&1)
		n >>= 1
	}
	return string(buf[i:])
}
