package bitpacking

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMostSignificantBit(t *testing.T) {
	assert.Equal(t, 0, mostSignificantBit(0))
	assert.Equal(t, 1, mostSignificantBit(1))
	assert.Equal(t, 2, mostSignificantBit(2))
	assert.Equal(t, 2, mostSignificantBit(3))
	assert.Equal(t, 32, mostSignificantBit(0xFFFFFFFF))
}

func TestNumBitsZeroBlock(t *testing.T) {
	values := make([]uint32, BlockLen)
	assert.Equal(t, 0, NumBits(values))
}

// TestNumBitsMinimality covers universal property 4: b* = NumBits(X)
// fits every value, and b*-1 does not (for b* > 0).
func TestNumBitsMinimality(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for trial := 0; trial < 50; trial++ {
		values := make([]uint32, BlockLen)
		for i := range values {
			values[i] = rng.Uint32() >> uint(rng.Intn(32))
		}
		b := NumBits(values)
		require.LessOrEqual(t, b, 32)

		for _, v := range values {
			assert.LessOrEqual(t, v, maskFor(b), "value exceeds b=%d bits", b)
		}

		if b > 0 {
			exceeds := false
			for _, v := range values {
				if v > maskFor(b-1) {
					exceeds = true
					break
				}
			}
			assert.True(t, exceeds, "values fit in b-1=%d bits, so b=%d wasn't minimal", b-1, b)
		}
	}
}

func TestNumBitsSortedMinimality(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	const initial = 100

	for trial := 0; trial < 50; trial++ {
		values := make([]uint32, BlockLen)
		cur := uint32(initial)
		for i := range values {
			cur += uint32(rng.Intn(8))
			values[i] = cur
		}

		b := NumBitsSorted(initial, values)
		packed := make([]byte, b*16)
		CompressSorted(initial, values, packed, b)
		got := make([]uint32, BlockLen)
		DecompressSorted(initial, packed, got, b)
		assert.Equal(t, values, got)

		if b > 0 {
			// b-1 bits must not be enough: at least one lane-wise delta
			// (vector 0 against initial, vector k against vector k-1)
			// exceeds what b-1 bits can hold.
			exceeds := false
			prev := vecBroadcast(initial)
			for i := 0; i < 32 && !exceeds; i++ {
				cur := loadValues(values, i)
				d := vecDelta(cur, prev)
				for _, lane := range d {
					if lane > maskFor(b-1) {
						exceeds = true
						break
					}
				}
				prev = cur
			}
			assert.True(t, exceeds, "deltas fit in b-1=%d bits, so b=%d wasn't minimal", b-1, b)
		}
	}
}
