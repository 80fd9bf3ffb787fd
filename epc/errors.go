/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-epccodec/bitextract"
	"github.com/pkg/errors"
)

// Errors returned by this package are wrapped with details about the input
// that caused them; use errors.Is to test for a particular kind.
var (
	ErrMalformedHex        = errors.New("malformed hex input")
	ErrUnsupportedLength   = errors.New("unsupported EPC length")
	ErrUnknownHeader       = errors.New("unknown EPC header")
	ErrHeaderMismatch      = errors.New("header does not match scheme")
	ErrInvalidPartition    = errors.New("invalid partition value")
	ErrInvalidPrefixLength = errors.New("invalid company prefix length")
	ErrFieldRange          = errors.New("field value out of range")
	ErrMalformedURN        = errors.New("malformed EPC URN")
	ErrUnsupportedAI       = errors.New("unsupported application identifier")
	ErrMalformedKey        = errors.New("malformed GS1 key")

	ErrInsufficientBits = bitextract.ErrInsufficientBits
	ErrValueOverflow    = bitextract.ErrValueOverflow
)
