package bitpacking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockLenConstant(t *testing.T) {
	assert.Equal(t, 128, BlockLen)
}

func TestCompressRejectsInvalidBitWidth(t *testing.T) {
	values := make([]uint32, BlockLen)
	out := make([]byte, 1<<10)

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			var werr *InvalidBitWidthError
			require.True(t, errors.As(recoverErr(r), &werr))
			assert.Equal(t, 33, werr.BitWidth)
		}()
		Compress(values, out, 33)
	}()
}

func TestCompressRejectsWrongBlockLength(t *testing.T) {
	out := make([]byte, 1<<10)

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			var werr *BufferTooSmallError
			require.True(t, errors.As(recoverErr(r), &werr))
		}()
		Compress(make([]uint32, BlockLen-1), out, 4)
	}()
}

func TestCompressRejectsShortOutput(t *testing.T) {
	values := make([]uint32, BlockLen)

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			var werr *BufferTooSmallError
			require.True(t, errors.As(recoverErr(r), &werr))
			assert.Equal(t, 16*5, werr.Need)
		}()
		Compress(values, make([]byte, 10), 5)
	}()
}

func TestDecompressRejectsShortOutput(t *testing.T) {
	packed := make([]byte, 16*5)

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			var werr *BufferTooSmallError
			require.True(t, errors.As(recoverErr(r), &werr))
		}()
		Decompress(packed, make([]uint32, BlockLen-1), 5)
	}()
}

func TestErrorMessagesAreDescriptive(t *testing.T) {
	var bw error = &InvalidBitWidthError{BitWidth: 40}
	assert.Contains(t, bw.Error(), "40")

	var bts error = &BufferTooSmallError{What: "compress output buffer", Need: 80, Got: 10}
	assert.Contains(t, bts.Error(), "compress output buffer")
	assert.Contains(t, bts.Error(), "80")
	assert.Contains(t, bts.Error(), "10")
}

// recoverErr normalizes a recover() value (which is `any`) to an error
// for errors.As, matching the panic(err) convention used throughout.
func recoverErr(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return nil
}
