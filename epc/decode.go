/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// ParseHex converts hex tag data to bytes. It ignores case, surrounding
// spaces and an optional "0x" prefix, and left-pads odd-length input with a
// '0'.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedHex, "%q: %v", s, err)
	}
	return b, nil
}

// DecodeString is a convenience method that decodes hex-encoded tag data.
func DecodeString(epc string) (Identifier, error) {
	b, err := ParseHex(epc)
	if err != nil {
		return nil, err
	}
	return Decode(b)
}

// Decode selects a scheme by the header byte of a 96-bit EPC and decodes it.
//
// Data that is not exactly 12 bytes is rejected before its header is
// examined.
func Decode(b []byte) (Identifier, error) {
	if len(b) != EPC96NumBytes {
		return nil, errors.Wrapf(ErrUnsupportedLength,
			"EPCs should have %d bytes, but this has %d bytes",
			EPC96NumBytes, len(b))
	}

	switch b[0] {
	case SGTIN96Header:
		return identifier(DecodeSGTIN(b))
	case SSCC96Header:
		return identifier(DecodeSSCC(b))
	case SGLN96Header:
		return identifier(DecodeSGLN(b))
	case GRAI96Header:
		return identifier(DecodeGRAI(b))
	case GIAI96Header:
		return identifier(DecodeGIAI(b))
	case GID96Header:
		return identifier(DecodeGID(b))
	default:
		return nil, errors.Wrapf(ErrUnknownHeader, "0x%02X", b[0])
	}
}

// identifier keeps a failed decode from returning a non-nil Identifier that
// wraps a zero value.
func identifier(id Identifier, err error) (Identifier, error) {
	if err != nil {
		return nil, err
	}
	return id, nil
}
