// Command codegen emits kernels_gen.go: the 62 pack/unpack functions for
// bit widths 1..31 (width 32 and width 0 are hand-written in
// dispatch.go, since they need no per-width shift schedule).
//
// Each function's shift amounts are derived here, at generation time,
// from the bit width and its cycle length, the same way the original
// Rust macro (original_source/src/macros.rs) derives its per-iteration
// consts from $n and $cycle. Go has no const generics to do this at
// compile time per spec §9's "generic monomorphization" option, so this
// package takes the spec's other sanctioned option: code generation.
//
// Run from the module root:
//
//	go run ./internal/codegen > kernels_gen.go
package main

import (
	"bytes"
	"fmt"
	"math/bits"
	"os"
)

// cycleOf returns C = 32/gcd(b, 32), the number of input vectors a
// pack/unpack round consumes before the bit cursor returns to a vector
// boundary (spec §3, "Cycle length C").
func cycleOf(b int) int {
	return 32 / gcd(b, 32)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func main() {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by internal/codegen; DO NOT EDIT.\n")
	buf.WriteString("//go:generate go run ./internal/codegen\n\n")
	buf.WriteString("package bitpacking\n\n")

	for b := 1; b < 32; b++ {
		writePack(&buf, b, cycleOf(b))
		buf.WriteString("\n")
	}
	for b := 1; b < 32; b++ {
		writeUnpack(&buf, b, cycleOf(b))
		buf.WriteString("\n")
	}

	os.Stdout.Write(buf.Bytes())
}

func writePack(buf *bytes.Buffer, b, cycle int) {
	repeat := 32 / cycle
	fmt.Fprintf(buf, "// packB%d bit-packs one 128-value block at a fixed width of %d bits per value.\n", b, b)
	fmt.Fprintf(buf, "// Cycle length C = %d; the schedule repeats %d time(s) per block.\n", cycle, repeat)
	fmt.Fprintf(buf, "func packB%d[T transformer](values []uint32, out []byte, t T) int {\n", b)
	fmt.Fprintf(buf, "\tconst numBits = %d\n", b)
	fmt.Fprintf(buf, "\tconst numBytes = numBits * BlockLen / 8\n")
	fmt.Fprintf(buf, "\tinVec := 0\n")
	fmt.Fprintf(buf, "\toutVec := 0\n")
	fmt.Fprintf(buf, "\tfor r := 0; r < %d; r++ {\n", repeat)
	fmt.Fprintf(buf, "\t\toutReg := t.transform(loadValues(values, inVec))\n")
	fmt.Fprintf(buf, "\t\tinVec++\n")

	for iter := 2; iter < cycle; iter++ {
		bitsFilled := (iter - 1) * b
		innerCursor := bitsFilled % 32
		remaining := 32 - innerCursor
		v := fmt.Sprintf("in%d", iter)
		fmt.Fprintf(buf, "\t\t%s := t.transform(loadValues(values, inVec))\n", v)
		fmt.Fprintf(buf, "\t\tinVec++\n")
		if innerCursor > 0 {
			fmt.Fprintf(buf, "\t\toutReg = vecOr(outReg, vecShl(%s, %d))\n", v, innerCursor)
		} else {
			fmt.Fprintf(buf, "\t\toutReg = %s\n", v)
		}
		if remaining <= b {
			fmt.Fprintf(buf, "\t\tstorePacked(out, outVec, outReg)\n")
			fmt.Fprintf(buf, "\t\toutVec++\n")
			if remaining < b {
				fmt.Fprintf(buf, "\t\toutReg = vecShr(%s, %d)\n", v, remaining)
			}
		}
	}

	fmt.Fprintf(buf, "\t\tinFinal := t.transform(loadValues(values, inVec))\n")
	fmt.Fprintf(buf, "\t\tinVec++\n")
	fmt.Fprintf(buf, "\t\toutReg = vecOr(outReg, vecShl(inFinal, %d))\n", 32-b)
	fmt.Fprintf(buf, "\t\tstorePacked(out, outVec, outReg)\n")
	fmt.Fprintf(buf, "\t\toutVec++\n")
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "\treturn numBytes\n")
	fmt.Fprintf(buf, "}\n")
}

func writeUnpack(buf *bytes.Buffer, b, cycle int) {
	repeat := 32 / cycle
	fmt.Fprintf(buf, "// unpackB%d unpacks one 128-value block that was packed at a fixed width of %d bits per value.\n", b, b)
	fmt.Fprintf(buf, "func unpackB%d[T sink](packed []byte, s T) int {\n", b)
	fmt.Fprintf(buf, "\tconst numBits = %d\n", b)
	fmt.Fprintf(buf, "\tconst numBytes = numBits * BlockLen / 8\n")
	fmt.Fprintf(buf, "\tmask := vecBroadcast((uint32(1) << numBits) - 1)\n")
	fmt.Fprintf(buf, "\tinVec := 0\n")
	fmt.Fprintf(buf, "\tfor r := 0; r < %d; r++ {\n", repeat)
	fmt.Fprintf(buf, "\t\tinReg := loadPacked(packed, inVec)\n")
	fmt.Fprintf(buf, "\t\ts.process(vecAnd(inReg, mask))\n")

	for i := 1; i < cycle; i++ {
		innerCursor := (i * b) % 32
		innerCap := 32 - innerCursor
		fmt.Fprintf(buf, "\t\t{\n")
		fmt.Fprintf(buf, "\t\t\tshifted := vecShr(inReg, %d)\n", innerCursor)
		fmt.Fprintf(buf, "\t\t\tout := vecAnd(shifted, mask)\n")
		if innerCap <= b && i != cycle-1 {
			fmt.Fprintf(buf, "\t\t\tinVec++\n")
			fmt.Fprintf(buf, "\t\t\tinReg = loadPacked(packed, inVec)\n")
			if innerCap < b {
				fmt.Fprintf(buf, "\t\t\tmasked := vecAnd(vecShl(inReg, %d), mask)\n", innerCap)
				fmt.Fprintf(buf, "\t\t\tout = vecOr(out, masked)\n")
			}
		}
		fmt.Fprintf(buf, "\t\t\ts.process(out)\n")
		fmt.Fprintf(buf, "\t\t}\n")
	}

	fmt.Fprintf(buf, "\t\tinVec++\n")
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "\treturn numBytes\n")
	fmt.Fprintf(buf, "}\n")
}

// msbRef is the reference most-significant-bit definition, the same one
// the hand-written estimator in estimate.go uses: msb(0) = 0, otherwise
// the number of bits needed to represent x.
func msbRef(x uint32) int {
	return bits.Len32(x)
}
