/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"strings"

	"github.com/pkg/errors"
)

// GS1 Application Identifiers accepted by EncodeBarcode.
const (
	AISSCC = "00"
	AIGTIN = "01"
	AIGLN  = "414"
	AIGRAI = "8003"
)

// BarcodeRequest is a GS1 element string and the details needed to encode it
// as a 96-bit EPC.
type BarcodeRequest struct {
	// AI is the Application Identifier of Code: "01", "00", "414" or "8003".
	AI string
	// Code is the GS1 key's digits, including its check digit.
	Code string
	// Serial is the serial (GTIN, GRAI) or extension (GLN); SSCCs ignore it.
	Serial string
	// CompanyPrefixLength is the number of digits, 6 to 12, in the GS1
	// Company Prefix inside Code.
	CompanyPrefixLength int
	// Filter is written to the tag's filter field. Its zero value is Other,
	// not DefaultFilter; NewBarcodeRequest sets DefaultFilter.
	Filter FilterValue
}

// NewBarcodeRequest returns a BarcodeRequest using the DefaultFilter.
func NewBarcodeRequest(ai, code, serial string, prefixLen int) BarcodeRequest {
	return BarcodeRequest{
		AI:                  ai,
		Code:                code,
		Serial:              serial,
		CompanyPrefixLength: prefixLen,
		Filter:              DefaultFilter,
	}
}

// URN translates the request to the parts of a Pure Identity URI.
func (req BarcodeRequest) URN() (URN, error) {
	switch req.AI {
	case AIGTIN:
		return SGTINFromGTIN(req.Code, req.Serial, req.CompanyPrefixLength)
	case AISSCC:
		return SSCCFromCode(req.Code, req.CompanyPrefixLength)
	case AIGLN:
		return SGLNFromGLN(req.Code, req.Serial, req.CompanyPrefixLength)
	case AIGRAI:
		return GRAIFromCode(req.Code, req.Serial, req.CompanyPrefixLength)
	}
	return URN{}, errors.Wrapf(ErrUnsupportedAI, "%q is not one of "+
		"%s, %s, %s or %s", req.AI, AIGTIN, AISSCC, AIGLN, AIGRAI)
}

// EncodeBarcode converts a GS1 key and serial into the upper-case hex of its
// 96-bit EPC.
func EncodeBarcode(req BarcodeRequest) (string, error) {
	u, err := req.URN()
	if err != nil {
		return "", err
	}
	return Encode(u.Scheme, req.Filter, u.CompanyPrefix, u.Reference, u.Serial)
}

// Encode packs the parts of a Pure Identity URI into the upper-case hex of a
// 96-bit EPC. For GID-96, companyPrefix is the General Manager Number,
// reference is the Object Class, and filter is ignored. SSCC-96 ignores
// serial.
func Encode(scheme Scheme, filter FilterValue, companyPrefix, reference, serial string) (string, error) {
	switch scheme {
	case SGTIN96:
		return EncodeSGTIN(filter, companyPrefix, reference, serial)
	case SSCC96:
		return EncodeSSCC(filter, companyPrefix, reference)
	case SGLN96:
		return EncodeSGLN(filter, companyPrefix, reference, serial)
	case GRAI96:
		return EncodeGRAI(filter, companyPrefix, reference, serial)
	case GIAI96:
		return EncodeGIAI(filter, companyPrefix, reference, serial)
	case GID96:
		return EncodeGID(companyPrefix, reference, serial)
	}
	return "", errors.Errorf("cannot encode %s", scheme)
}

// gs1Key validates a GS1 key and left-pads it with '0's to width digits, and
// checks the company prefix length leaves room for the rest of the key.
func gs1Key(code string, width, prefixLen int) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" || !isDigits(code) {
		return "", errors.Wrapf(ErrMalformedKey,
			"%q must be a non-empty string of digits", code)
	}
	if len(code) > width {
		return "", errors.Wrapf(ErrMalformedKey,
			"%q has %d digits, but should have at most %d", code, len(code), width)
	}
	if prefixLen < minPrefixDigits || prefixLen > maxPrefixDigits {
		return "", errors.Wrapf(ErrInvalidPrefixLength,
			"company prefixes have %d to %d digits, not %d",
			minPrefixDigits, maxPrefixDigits, prefixLen)
	}
	return leftPad(code, width), nil
}
