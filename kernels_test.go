package bitpacking

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maskFor returns the bitmask for a bit width in [0, 32].
func maskFor(bitWidth int) uint32 {
	if bitWidth >= 32 {
		return 0xFFFFFFFF
	}
	if bitWidth == 0 {
		return 0
	}
	return (uint32(1) << bitWidth) - 1
}

// TestRoundTripAllWidths covers universal property 1: round-trip for
// every bit width 0..32, using values that exactly fill the width.
func TestRoundTripAllWidths(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for bitWidth := 0; bitWidth <= 32; bitWidth++ {
		values := make([]uint32, BlockLen)
		mask := maskFor(bitWidth)
		for i := range values {
			values[i] = rng.Uint32() & mask
		}

		packed := make([]byte, bitWidth*16)
		n := Compress(values, packed, bitWidth)
		require.Equal(t, bitWidth*16, n, "bit width %d", bitWidth)

		got := make([]uint32, BlockLen)
		read := Decompress(packed, got, bitWidth)
		require.Equal(t, bitWidth*16, read, "bit width %d", bitWidth)
		assert.Equal(t, values, got, "bit width %d", bitWidth)
	}
}

// TestDeltaRoundTripAllWidths covers universal property 2: a
// non-decreasing sequence round-trips through CompressSorted/
// DecompressSorted at its minimal sorted bit width, and at every wider
// bit width too.
func TestDeltaRoundTripAllWidths(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const initial = 0

	for trial := 0; trial < 8; trial++ {
		values := make([]uint32, BlockLen)
		var cur uint32
		for i := range values {
			cur += uint32(rng.Intn(5))
			values[i] = cur
		}

		minBits := NumBitsSorted(initial, values)
		for bitWidth := minBits; bitWidth <= 32; bitWidth++ {
			packed := make([]byte, bitWidth*16)
			CompressSorted(initial, values, packed, bitWidth)

			got := make([]uint32, BlockLen)
			DecompressSorted(initial, packed, got, bitWidth)
			assert.Equal(t, values, got, "trial %d bit width %d", trial, bitWidth)
		}
	}
}

// TestCompressDecompressSize covers universal property 3.
func TestCompressDecompressSize(t *testing.T) {
	values := make([]uint32, BlockLen)
	for bitWidth := 0; bitWidth <= 32; bitWidth++ {
		packed := make([]byte, bitWidth*16)
		assert.Equal(t, bitWidth*16, Compress(values, packed, bitWidth))
		out := make([]uint32, BlockLen)
		assert.Equal(t, bitWidth*16, Decompress(packed, out, bitWidth))
	}
}

// TestScenarioS1 is spec scenario S1.
func TestScenarioS1(t *testing.T) {
	values := make([]uint32, BlockLen)
	for i := range values {
		values[i] = uint32(i)
	}
	require.Equal(t, 7, NumBits(values))

	packed := make([]byte, 7*16)
	n := Compress(values, packed, 7)
	require.Equal(t, 112, n)

	got := make([]uint32, BlockLen)
	Decompress(packed, got, 7)
	assert.Equal(t, values, got)
}

// TestScenarioS2 is spec scenario S2.
func TestScenarioS2(t *testing.T) {
	values := make([]uint32, BlockLen)
	assert.Equal(t, 0, NumBits(values))

	packed := make([]byte, 0)
	assert.Equal(t, 0, Compress(values, packed, 0))

	got := make([]uint32, BlockLen)
	Decompress(nil, got, 0)
	assert.Equal(t, values, got)
}

// TestScenarioS3 is spec scenario S3: X[i] = 3*i with initial 0. The
// striped delta compares each lane with the same lane one vector back,
// so the deltas are 0, 3, 6, 9 for vector 0 and 12 afterwards: 4 bits.
func TestScenarioS3(t *testing.T) {
	values := make([]uint32, BlockLen)
	for i := range values {
		values[i] = uint32(i * 3)
	}
	require.Equal(t, 4, NumBitsSorted(0, values))

	packed := make([]byte, 64)
	n := CompressSorted(0, values, packed, 4)
	require.Equal(t, 64, n)

	got := make([]uint32, BlockLen)
	DecompressSorted(0, packed, got, 4)
	assert.Equal(t, values, got)
}

// TestScenarioS4 is spec scenario S4.
func TestScenarioS4(t *testing.T) {
	values := make([]uint32, BlockLen)
	for i := range values {
		values[i] = 0xFFFFFFFF
	}
	packed := make([]byte, 32*16)
	Compress(values, packed, 32)

	raw := make([]byte, 0, BlockLen*4)
	for _, v := range values {
		raw = le.AppendUint32(raw, v)
	}
	assert.Equal(t, raw, packed)

	got := make([]uint32, BlockLen)
	Decompress(packed, got, 32)
	assert.Equal(t, values, got)
}

// TestScenarioS5 is spec scenario S5.
func TestScenarioS5(t *testing.T) {
	values := make([]uint32, BlockLen)
	values[0] = 1 << 30

	require.Equal(t, 31, NumBits(values))

	packed := make([]byte, 31*16)
	Compress(values, packed, 31)
	got := make([]uint32, BlockLen)
	Decompress(packed, got, 31)
	assert.Equal(t, values, got)

	assert.GreaterOrEqual(t, 31, NumBits(values))
	assert.Less(t, 30, NumBits(values), "30 bits must not be accepted: it would overflow")
}

// TestScenarioS6 is spec scenario S6.
func TestScenarioS6(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	values := make([]uint32, BlockLen)
	for i := range values {
		values[i] = uint32(rng.Intn(1024))
	}

	minBits := NumBits(values)
	require.LessOrEqual(t, minBits, 10)

	for bitWidth := minBits; bitWidth <= 32; bitWidth++ {
		packed := make([]byte, bitWidth*16)
		Compress(values, packed, bitWidth)
		got := make([]uint32, BlockLen)
		Decompress(packed, got, bitWidth)
		assert.Equal(t, values, got, "bit width %d", bitWidth)
	}
}

// TestWidthThreshold covers universal property 8: a block with a single
// 2^k value and zeros elsewhere needs exactly k+1 bits, at every
// position.
func TestWidthThreshold(t *testing.T) {
	for k := 0; k < 32; k++ {
		for pos := 0; pos < BlockLen; pos++ {
			values := make([]uint32, BlockLen)
			values[pos] = 1 << uint(k)
			assert.Equal(t, k+1, NumBits(values), "k=%d pos=%d", k, pos)
		}
	}
}

// TestZeroBlockUnpackAtWidth0 covers universal property 6: a plain
// width-0 unpack reads nothing and fills the output with zeros.
func TestZeroBlockUnpackAtWidth0(t *testing.T) {
	out := make([]uint32, BlockLen)
	for i := range out {
		out[i] = 0xDEADBEEF // garbage that must be fully overwritten
	}
	Decompress(nil, out, 0)
	for _, v := range out {
		assert.Equal(t, uint32(0), v)
	}
}

// TestSortedZeroWidthUnpackReplicatesInitial covers universal property 7.
func TestSortedZeroWidthUnpackReplicatesInitial(t *testing.T) {
	out := make([]uint32, BlockLen)
	DecompressSorted(42, nil, out, 0)
	for _, v := range out {
		assert.Equal(t, uint32(42), v)
	}
}

// TestWidth32SortedIntegratesAtTheSink is the explicit test the spec's
// design notes call for: decompress_sorted at bit width 32 must still
// integrate, even though the width-32 unpack kernel itself applies no
// delta logic (integration happens in the Sink, not the kernel).
func TestWidth32SortedIntegratesAtTheSink(t *testing.T) {
	values := make([]uint32, BlockLen)
	var cur uint32 = 1000
	for i := range values {
		cur += uint32(i)
		values[i] = cur
	}

	packed := make([]byte, 32*16)
	CompressSorted(1000, values, packed, 32)

	got := make([]uint32, BlockLen)
	DecompressSorted(1000, packed, got, 32)
	assert.Equal(t, values, got)
}

// TestStripedDeltaIsPerSubstream documents spec §4.3: delta is computed
// lane-wise on the 4-wide striped layout, not as one flat scalar
// successive difference. A sequence that is monotone only when viewed
// lane-by-lane (not element-by-element) still round-trips.
func TestStripedDeltaIsPerSubstream(t *testing.T) {
	values := make([]uint32, BlockLen)
	for lane := 0; lane < 4; lane++ {
		for k := 0; k < BlockLen/4; k++ {
			values[lane+k*4] = uint32(lane*1000 + k)
		}
	}

	bitWidth := NumBitsSorted(0, values)
	packed := make([]byte, bitWidth*16)
	CompressSorted(0, values, packed, bitWidth)

	got := make([]uint32, BlockLen)
	DecompressSorted(0, packed, got, bitWidth)
	assert.Equal(t, values, got)
}
