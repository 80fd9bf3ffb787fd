/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bitextract

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrBitWidth is returned when a field width is outside [1, 64].
	ErrBitWidth = errors.New("field width must be in [1, 64]")
	// ErrInsufficientBits is returned when a read extends past the data.
	ErrInsufficientBits = errors.New("insufficient bits")
	// ErrValueOverflow is returned when a value does not fit its field width.
	ErrValueOverflow = errors.New("value does not fit in field")
)

// BitReader reads consecutive, variable-width unsigned fields from a byte
// slice, most significant bit first.
//
// A BitReader keeps a cursor and must not be shared between goroutines; make
// a new one for each slice you decode.
type BitReader struct {
	data []byte
	pos  int
}

// NewBitReader returns a BitReader positioned at bit 0 of data.
func NewBitReader(data []byte) *BitReader {
	return &BitReader{data: data}
}

// ReadBits returns the next n bits as an unsigned integer and advances the
// cursor by n. The cursor does not move if an error is returned.
func (r *BitReader) ReadBits(n int) (uint64, error) {
	if n < 1 || n > MaxFieldBits {
		return 0, errors.Wrapf(ErrBitWidth, "requested %d bits", n)
	}
	if n > r.BitsRemaining() {
		return 0, errors.Wrapf(ErrInsufficientBits,
			"requested %d bits at bit %d, but only %d remain",
			n, r.pos, r.BitsRemaining())
	}
	v := New(r.pos, n).ExtractUInt64(r.data)
	r.pos += n
	return v, nil
}

// SkipBits moves the cursor by n bits, clamped to [0, total bits].
func (r *BitReader) SkipBits(n int) {
	r.pos += n
	if r.pos < 0 {
		r.pos = 0
	}
	if total := len(r.data) * ByteSize; r.pos > total {
		r.pos = total
	}
}

// BitsRemaining returns the number of unread bits.
func (r *BitReader) BitsRemaining() int {
	return len(r.data)*ByteSize - r.pos
}

// Pos returns the cursor's bit offset.
func (r *BitReader) Pos() int {
	return r.pos
}

// BitWriter appends variable-width unsigned fields to a growing bit sequence,
// most significant bit first. The zero value is ready to use.
type BitWriter struct {
	data []byte
	pos  int
}

// NewBitWriter returns a BitWriter with room for sizeHint bits before it has
// to grow.
func NewBitWriter(sizeHint int) *BitWriter {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &BitWriter{data: make([]byte, 0, (sizeHint+ByteSize-1)/ByteSize)}
}

// WriteBits appends the low n bits of v. Nothing is written if v needs more
// than n bits.
func (w *BitWriter) WriteBits(v uint64, n int) error {
	if n < 1 || n > MaxFieldBits {
		return errors.Wrapf(ErrBitWidth, "requested %d bits", n)
	}
	if n < MaxFieldBits && v>>uint(n) != 0 {
		return errors.Wrapf(ErrValueOverflow, "%d needs more than %d bits", v, n)
	}

	for i := n - 1; i >= 0; i-- {
		if w.pos%ByteSize == 0 {
			w.data = append(w.data, 0)
		}
		if (v>>uint(i))&1 == 1 {
			w.data[w.pos/ByteSize] |= 0x80 >> uint(w.pos%ByteSize)
		}
		w.pos++
	}
	return nil
}

// PadTo appends 0 bits until the sequence is exactly bits long.
func (w *BitWriter) PadTo(bits int) error {
	if w.pos > bits {
		return errors.Wrapf(ErrValueOverflow,
			"already wrote %d bits; cannot pad to %d", w.pos, bits)
	}
	for w.pos < bits {
		n := bits - w.pos
		if n > MaxFieldBits {
			n = MaxFieldBits
		}
		if err := w.WriteBits(0, n); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of bits written so far.
func (w *BitWriter) Len() int {
	return w.pos
}

// Bytes returns the written bits; a trailing partial byte is zero-filled.
func (w *BitWriter) Bytes() []byte {
	return w.data
}

// String returns the written bytes as upper-case hex.
func (w *BitWriter) String() string {
	return fmt.Sprintf("%X", w.data)
}
