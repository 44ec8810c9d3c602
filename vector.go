package bitpacking

import "encoding/binary"

// vector is the portable backend's lane-vector type: four 32-bit lanes,
// striped across the block the way BLOCK_LEN/4 = 32 independent vectors
// are laid out (see the package doc comment). This is the one concrete
// backend the core ships; a SIMD backend would satisfy the same
// primitive set below over a real machine register instead.
type vector [4]uint32

var le = binary.LittleEndian

// loadValues reads the vecIdx-th vector (4 consecutive uint32 lanes) out
// of a logical block. vecIdx ranges over [0, BlockLen/4).
func loadValues(block []uint32, vecIdx int) vector {
	i := vecIdx * 4
	return vector{block[i], block[i+1], block[i+2], block[i+3]}
}

// storeValues writes v back into the vecIdx-th vector slot of block.
func storeValues(block []uint32, vecIdx int, v vector) {
	i := vecIdx * 4
	block[i], block[i+1], block[i+2], block[i+3] = v[0], v[1], v[2], v[3]
}

// loadPacked performs an unaligned 16-byte load from a packed buffer,
// treating it as the vecIdx-th of its consecutive 128-bit vectors.
func loadPacked(packed []byte, vecIdx int) vector {
	p := packed[vecIdx*16 : vecIdx*16+16]
	return vector{
		le.Uint32(p[0:4]),
		le.Uint32(p[4:8]),
		le.Uint32(p[8:12]),
		le.Uint32(p[12:16]),
	}
}

// storePacked performs an unaligned 16-byte store of v into the vecIdx-th
// vector slot of a packed buffer.
func storePacked(packed []byte, vecIdx int, v vector) {
	p := packed[vecIdx*16 : vecIdx*16+16]
	le.PutUint32(p[0:4], v[0])
	le.PutUint32(p[4:8], v[1])
	le.PutUint32(p[8:12], v[2])
	le.PutUint32(p[12:16], v[3])
}

// vecOr is the lane-wise bitwise OR primitive.
func vecOr(a, b vector) vector {
	return vector{a[0] | b[0], a[1] | b[1], a[2] | b[2], a[3] | b[3]}
}

// vecAnd is the lane-wise bitwise AND primitive.
func vecAnd(a, b vector) vector {
	return vector{a[0] & b[0], a[1] & b[1], a[2] & b[2], a[3] & b[3]}
}

// vecShl is the lane-wise logical left shift by a compile-time amount in
// the generated kernels; k is always a literal constant at call sites so
// the k == 0 branch below is dead code there, not a runtime check.
func vecShl(v vector, k uint) vector {
	if k == 0 {
		return v
	}
	return vector{v[0] << k, v[1] << k, v[2] << k, v[3] << k}
}

// vecShr is the lane-wise logical right shift counterpart to vecShl.
func vecShr(v vector, k uint) vector {
	if k == 0 {
		return v
	}
	return vector{v[0] >> k, v[1] >> k, v[2] >> k, v[3] >> k}
}

// vecBroadcast replicates a scalar into all four lanes.
func vecBroadcast(x uint32) vector {
	return vector{x, x, x, x}
}

// vecDelta computes the lane-wise difference cur - prev. Because the
// block is striped into 4 interleaved sub-streams (lane l holds logical
// indices l, l+4, l+8, ...), this lane-wise subtraction is exactly the
// successive difference within each sub-stream, not a true scalar delta
// across the whole sequence.
func vecDelta(cur, prev vector) vector {
	return vector{
		cur[0] - prev[0],
		cur[1] - prev[1],
		cur[2] - prev[2],
		cur[3] - prev[3],
	}
}

// vecIntegrate is the inverse of vecDelta: lane-wise prefix-sum step.
func vecIntegrate(acc, d vector) vector {
	return vector{
		acc[0] + d[0],
		acc[1] + d[1],
		acc[2] + d[2],
		acc[3] + d[3],
	}
}

// vecOrReduce horizontally ORs the four lanes down to one scalar.
func vecOrReduce(v vector) uint32 {
	return v[0] | v[1] | v[2] | v[3]
}
