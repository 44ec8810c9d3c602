package bitpacking

import "math/bits"

// mostSignificantBit returns the position of the highest set bit of x,
// or 0 if x == 0 (spec §4.1). This is exactly math/bits.Len32: it
// returns the minimum number of bits needed to represent x, which is
// zero only for x == 0.
func mostSignificantBit(x uint32) int {
	return bits.Len32(x)
}

// estimateBits accumulates the lane-wise OR of all 32 vectors of a
// BLOCK_LEN block and reduces it to the minimum bit width that fits
// every value (spec §4.8, plain variant).
func estimateBits(values []uint32) int {
	acc := loadValues(values, 0)
	for i := 1; i < 32; i++ {
		acc = vecOr(acc, loadValues(values, i))
	}
	return mostSignificantBit(vecOrReduce(acc))
}

// estimateBitsSorted is the delta variant of estimateBits: it OR-reduces
// the 32 lane-wise deltas (vector 0 against broadcast(initial), vector k
// against vector k-1) rather than the raw values.
func estimateBitsSorted(initial uint32, values []uint32) int {
	seed := vecBroadcast(initial)
	first := loadValues(values, 0)
	acc := vecDelta(first, seed)
	prev := first
	for i := 1; i < 32; i++ {
		cur := loadValues(values, i)
		acc = vecOr(acc, vecDelta(cur, prev))
		prev = cur
	}
	return mostSignificantBit(vecOrReduce(acc))
}
