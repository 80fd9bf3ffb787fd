/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package bitextract reads and writes unsigned integer fields of arbitrary bit
// width from big-endian byte slices. Bit 0 is always the most significant bit
// of the first byte.
package bitextract

import (
	"encoding/binary"
	"fmt"
)

type alignmentBias uint8

const (
	ByteSize = 8
	ByteMask = (1 << ByteSize) - 1

	// MaxFieldBits is the widest field that fits a uint64.
	MaxFieldBits = 64

	srcAligned = alignmentBias(iota)
	srcBiasPrev
	srcBiasNext
)

// BitExtractor extracts the bits in [start, start+len) from byte slices.
//
// A BitExtractor holds only precomputed offsets and masks, so one value may be
// shared by any number of goroutines.
type BitExtractor struct {
	bitStart, byteStart, srcLen, dstLen int
	bias                                alignmentBias
	rshift, lshift, mask                uint8
}

// New returns a BitExtractor for len bits starting at bit start.
//
// Bit 0 is the highest-order bit of data[0]; later bits come from higher
// indexes. New panics if start is negative or len is less than 1.
func New(start, len int) (be BitExtractor) {
	be.SetBounds(start, len)
	return be
}

func ifAligned(size, ifYes, ifNo int) int {
	if size%ByteSize == 0 {
		return ifYes
	}
	return ifNo
}

// SetBounds changes the BitExtractor's start bit and bit length.
func (be *BitExtractor) SetBounds(start, len int) {
	if start < 0 || len < 1 {
		panic(fmt.Sprintf("illegal start (%d) or length (%d)", start, len))
	}
	if start+len < 0 {
		panic(fmt.Sprintf("cannot handle such a large start (%d) and length (%d)",
			start, len))
	}

	be.bitStart = start
	be.byteStart = start / ByteSize
	be.dstLen = len/ByteSize + ifAligned(len, 0, 1)
	srcEndByte := ((start + len) / ByteSize) - ifAligned(start+len, 1, 0)
	be.srcLen = srcEndByte - be.byteStart + 1
	srcEndOffset := (start + len - 1) % ByteSize
	be.rshift = uint8(ByteSize - srcEndOffset - 1)
	be.lshift = uint8(srcEndOffset + 1)
	be.mask = byte(ifAligned(len, ByteMask, (1<<uint(len%ByteSize))-1))

	switch {
	case be.rshift == 0:
		be.bias = srcAligned
	case be.srcLen == be.dstLen:
		be.bias = srcBiasPrev
	default:
		be.bias = srcBiasNext
	}
}

// ByteLength returns the number of bytes this extractor produces.
func (be BitExtractor) ByteLength() int {
	return be.dstLen
}

// SourceLength returns the minimum length a source slice must have for this
// extractor to read from it.
func (be BitExtractor) SourceLength() int {
	return be.byteStart + be.srcLen
}

// ExtractUInt64 extracts the bits and interprets them as a big-endian uint64.
//
// It panics if the field is wider than 64 bits.
func (be BitExtractor) ExtractUInt64(src []byte) uint64 {
	if be.dstLen > 8 {
		panic(fmt.Sprintf("a %d byte field does not fit in a uint64", be.dstLen))
	}
	var buff [8]byte
	be.ExtractTo(buff[8-be.dstLen:], src)
	return binary.BigEndian.Uint64(buff[:])
}

// Extract returns the extracted bits, right-aligned in a new slice.
func (be BitExtractor) Extract(src []byte) []byte {
	dest := make([]byte, be.dstLen)
	be.ExtractTo(dest, src)
	return dest
}

// ExtractTo writes the extracted bits, right-aligned, into dest.
//
// It panics if src is too short to hold the field or dest is too small.
func (be BitExtractor) ExtractTo(dest, src []byte) {
	if len(src) < be.SourceLength() {
		panic(fmt.Sprintf("cannot extract %d bytes from source[%d:%d], "+
			"as it only has %d total bytes",
			be.srcLen, be.byteStart, be.byteStart+be.srcLen, len(src)))
	}

	if len(dest) < be.dstLen {
		panic(fmt.Sprintf("destination size %d is too small "+
			"(should be at least %d)", len(dest), be.dstLen))
	}

	switch be.bias {
	case srcAligned:
		copy(dest, src[be.byteStart:be.byteStart+be.dstLen])
	case srcBiasPrev:
		dest[0] = src[be.byteStart] >> be.rshift
		for i := 1; i < be.dstLen; i++ {
			// previous byte shifts up; current byte shifts down
			dest[i] = src[i+be.byteStart-1]<<(ByteSize-be.rshift) |
				src[i+be.byteStart]>>be.rshift
		}
	case srcBiasNext:
		for i := 0; i < be.dstLen; i++ {
			// current byte shifts up; next byte shifts down
			dest[i] = src[i+be.byteStart]<<(ByteSize-be.rshift) |
				src[i+be.byteStart+1]>>be.rshift
		}
	}
	dest[0] &= be.mask
}
