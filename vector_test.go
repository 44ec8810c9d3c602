package bitpacking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecOrAnd(t *testing.T) {
	a := vector{0b1010, 0b1100, 0xFF00, 0}
	b := vector{0b0101, 0b1010, 0x00FF, 0xFFFFFFFF}
	assert.Equal(t, vector{0b1111, 0b1110, 0xFFFF, 0xFFFFFFFF}, vecOr(a, b))
	assert.Equal(t, vector{0, 0b1000, 0, 0}, vecAnd(a, b))
}

func TestVecShiftZeroIsNoop(t *testing.T) {
	v := vector{1, 2, 3, 4}
	assert.Equal(t, v, vecShl(v, 0))
	assert.Equal(t, v, vecShr(v, 0))
}

func TestVecShiftLanewise(t *testing.T) {
	v := vector{1, 2, 3, 4}
	assert.Equal(t, vector{4, 8, 12, 16}, vecShl(v, 2))
	assert.Equal(t, vector{0, 0, 0, 1}, vecShr(v, 2))
}

func TestVecBroadcast(t *testing.T) {
	assert.Equal(t, vector{7, 7, 7, 7}, vecBroadcast(7))
}

func TestVecDeltaIntegrateRoundTrip(t *testing.T) {
	prev := vector{10, 20, 30, 40}
	cur := vector{15, 25, 35, 100}
	d := vecDelta(cur, prev)
	assert.Equal(t, cur, vecIntegrate(prev, d))
}

func TestVecOrReduce(t *testing.T) {
	v := vector{0b0001, 0b0010, 0b0100, 0b1000}
	assert.Equal(t, uint32(0b1111), vecOrReduce(v))
	assert.Equal(t, uint32(0), vecOrReduce(vector{}))
}

func TestLoadStoreValuesRoundTrip(t *testing.T) {
	block := make([]uint32, BlockLen)
	for i := range block {
		block[i] = uint32(i * 3)
	}
	v := loadValues(block, 5)
	assert.Equal(t, vector{60, 63, 66, 69}, v)

	storeValues(block, 5, vector{100, 101, 102, 103})
	assert.Equal(t, []uint32{100, 101, 102, 103}, block[20:24])
}

func TestLoadStorePackedRoundTrip(t *testing.T) {
	packed := make([]byte, 32)
	storePacked(packed, 1, vector{0x01020304, 0xAABBCCDD, 1, 0xFFFFFFFF})
	v := loadPacked(packed, 1)
	assert.Equal(t, vector{0x01020304, 0xAABBCCDD, 1, 0xFFFFFFFF}, v)
	// Little-endian on the wire: low byte first.
	assert.Equal(t, byte(0x04), packed[16])
	assert.Equal(t, byte(0x03), packed[17])
}
