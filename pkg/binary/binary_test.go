package binary_test

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/aretw0/drills/pkg/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBinary(t *testing.T) {
	tests := map[string]bool{
		"0":     true,
		"1":     true,
		"0101":  true,
		"":      false,
		"2":     false,
		"10 1":  false,
		"0b101": false,
		"abc":   false,
	}
	for input, want := range tests {
		assert.Equal(t, want, binary.IsBinary(input), "IsBinary(%q)", input)
	}
}

func TestToDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"0", 0},
		{"1", 1},
		{"10", 2},
		{"1010", 10},
		{"00001010", 10},
		{"11111111", 255},
		{strings.Repeat("1", 64), ^uint64(0)},
		{"000" + strings.Repeat("1", 64), ^uint64(0)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := binary.ToDecimal(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToDecimal_Errors(t *testing.T) {
	t.Run("Not Binary", func(t *testing.T) {
		_, err := binary.ToDecimal("1021")
		assert.True(t, errors.Is(err, binary.ErrNotBinary))
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := binary.ToDecimal("")
		assert.ErrorIs(t, err, binary.ErrNotBinary)
	})

	t.Run("Overflow", func(t *testing.T) {
		_, err := binary.ToDecimal("1" + strings.Repeat("0", 64))
		assert.ErrorIs(t, err, binary.ErrOverflow)
	})
}

func TestFromDecimal(t *testing.T) {
	assert.Equal(t, "0", binary.FromDecimal(0))
	assert.Equal(t, "1", binary.FromDecimal(1))
	assert.Equal(t, "1010", binary.FromDecimal(10))
	assert.Equal(t, strings.Repeat("1", 64), binary.FromDecimal(^uint64(0)))
}

// Re-encoding a decoded string gives it back without leading zeros.
func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(64)
		var sb strings.Builder
		for j := 0; j < n; j++ {
			sb.WriteByte(byte('0' + rng.Intn(2)))
		}
		s := sb.String()

		dec, err := binary.ToDecimal(s)
		require.NoError(t, err, s)

		want := strings.TrimLeft(s, "0")
		if want == "" {
			want = "0"
		}
		assert.Equal(t, want, binary.FromDecimal(dec), s)
		assert.Equal(t, strconv.FormatUint(dec, 2), binary.FromDecimal(dec))
	}
}
