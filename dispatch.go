package bitpacking

// packB32 is the bit-width-32 pack kernel: a pass-through that applies
// the Transformer to each of the block's 32 vectors and stores it
// directly, with no bit shuffling (spec §4.6).
func packB32[T transformer](values []uint32, out []byte, t T) int {
	const numBytes = 32 * BlockLen / 8
	for i := 0; i < 32; i++ {
		v := t.transform(loadValues(values, i))
		storePacked(out, i, v)
	}
	return numBytes
}

// unpackB32 is the bit-width-32 unpack kernel: loads each of the 32
// vectors and hands it to the Sink. Delta-integration, when requested,
// happens inside the Sink, not here (spec §9 design note).
func unpackB32[T sink](packed []byte, s T) int {
	const numBytes = 32 * BlockLen / 8
	for i := 0; i < 32; i++ {
		s.process(loadPacked(packed, i))
	}
	return numBytes
}

// compressGeneric routes to the pack kernel for bitWidth, or handles the
// degenerate bitWidth == 0 case directly (nothing is written). Callers
// have already validated 0 <= bitWidth <= 32 (see bitpacking.go); the
// default branch is an internal-invariant guard, not a user-facing
// precondition check.
func compressGeneric[T transformer](values []uint32, out []byte, bitWidth int, t T) int {
	switch bitWidth {
	case 0:
		return 0
	case 1:
		return packB1(values, out, t)
	case 2:
		return packB2(values, out, t)
	case 3:
		return packB3(values, out, t)
	case 4:
		return packB4(values, out, t)
	case 5:
		return packB5(values, out, t)
	case 6:
		return packB6(values, out, t)
	case 7:
		return packB7(values, out, t)
	case 8:
		return packB8(values, out, t)
	case 9:
		return packB9(values, out, t)
	case 10:
		return packB10(values, out, t)
	case 11:
		return packB11(values, out, t)
	case 12:
		return packB12(values, out, t)
	case 13:
		return packB13(values, out, t)
	case 14:
		return packB14(values, out, t)
	case 15:
		return packB15(values, out, t)
	case 16:
		return packB16(values, out, t)
	case 17:
		return packB17(values, out, t)
	case 18:
		return packB18(values, out, t)
	case 19:
		return packB19(values, out, t)
	case 20:
		return packB20(values, out, t)
	case 21:
		return packB21(values, out, t)
	case 22:
		return packB22(values, out, t)
	case 23:
		return packB23(values, out, t)
	case 24:
		return packB24(values, out, t)
	case 25:
		return packB25(values, out, t)
	case 26:
		return packB26(values, out, t)
	case 27:
		return packB27(values, out, t)
	case 28:
		return packB28(values, out, t)
	case 29:
		return packB29(values, out, t)
	case 30:
		return packB30(values, out, t)
	case 31:
		return packB31(values, out, t)
	case 32:
		return packB32(values, out, t)
	default:
		panic(&InvalidBitWidthError{BitWidth: bitWidth})
	}
}

// decompressGeneric routes to the unpack kernel for bitWidth, or feeds
// the Sink 32 zero vectors for the degenerate bitWidth == 0 case (spec
// §4.7): delta-integration still advances by zero, replicating initial.
func decompressGeneric[T sink](packed []byte, bitWidth int, s T) int {
	switch bitWidth {
	case 0:
		zero := vecBroadcast(0)
		for i := 0; i < 32; i++ {
			s.process(zero)
		}
		return 0
	case 1:
		return unpackB1(packed, s)
	case 2:
		return unpackB2(packed, s)
	case 3:
		return unpackB3(packed, s)
	case 4:
		return unpackB4(packed, s)
	case 5:
		return unpackB5(packed, s)
	case 6:
		return unpackB6(packed, s)
	case 7:
		return unpackB7(packed, s)
	case 8:
		return unpackB8(packed, s)
	case 9:
		return unpackB9(packed, s)
	case 10:
		return unpackB10(packed, s)
	case 11:
		return unpackB11(packed, s)
	case 12:
		return unpackB12(packed, s)
	case 13:
		return unpackB13(packed, s)
	case 14:
		return unpackB14(packed, s)
	case 15:
		return unpackB15(packed, s)
	case 16:
		return unpackB16(packed, s)
	case 17:
		return unpackB17(packed, s)
	case 18:
		return unpackB18(packed, s)
	case 19:
		return unpackB19(packed, s)
	case 20:
		return unpackB20(packed, s)
	case 21:
		return unpackB21(packed, s)
	case 22:
		return unpackB22(packed, s)
	case 23:
		return unpackB23(packed, s)
	case 24:
		return unpackB24(packed, s)
	case 25:
		return unpackB25(packed, s)
	case 26:
		return unpackB26(packed, s)
	case 27:
		return unpackB27(packed, s)
	case 28:
		return unpackB28(packed, s)
	case 29:
		return unpackB29(packed, s)
	case 30:
		return unpackB30(packed, s)
	case 31:
		return unpackB31(packed, s)
	case 32:
		return unpackB32(packed, s)
	default:
		panic(&InvalidBitWidthError{BitWidth: bitWidth})
	}
}
