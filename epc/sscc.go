/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"github.com/pkg/errors"
)

// SSCC is a GS1 Serial Shipping Container Code. SSCC-96 has no serial field:
// the serial reference is the serial, and the last 24 bits are reserved.
//
// The serial reference's first digit is the SSCC extension digit; the SSCC-18
// is the extension digit, the company prefix, the rest of the serial
// reference, and the check digit, in that order.
type SSCC struct {
	tagFields
}

func (SSCC) Scheme() Scheme {
	return SSCC96
}

func (SSCC) Header() byte {
	return SSCC96Header
}

// SerialReference returns the serial reference, including its leading
// extension digit, zero-padded to the number of digits its partition allows.
func (s SSCC) SerialReference() string {
	return s.reference
}

// Serial returns "", since SSCCs don't have a separate serial.
func (SSCC) Serial() string {
	return ""
}

// SSCC returns the 18 digit GS1 SSCC element string.
func (s SSCC) SSCC() string {
	stem := s.companyPrefix
	if s.reference != "" {
		stem = s.reference[:1] + s.companyPrefix + s.reference[1:]
	}
	return SSCC18(stem)
}

// URI returns the EPC Pure Identity URI of the form
//	urn:epc:id:sscc:CompanyPrefix.SerialReference
// with leading '0's removed from both parts.
func (s SSCC) URI() string {
	return pureURI(SSCC96, trimZeros(s.companyPrefix), trimZeros(s.reference))
}

func (s SSCC) Record() Record {
	r := s.record(SSCC96)
	r.SerialReference = s.reference
	r.URN = s.URI()
	r.SSCC = s.SSCC()
	return r
}

// DecodeSSCC decodes an SSCC-96 encoded EPC. The reserved bits are read, but
// their value is ignored.
func DecodeSSCC(b []byte) (SSCC, error) {
	f, r, err := decodePartitioned(SSCC96, b)
	if err != nil {
		return SSCC{}, err
	}
	if _, err := r.ReadBits(ssccReserved); err != nil {
		return SSCC{}, err
	}
	return SSCC{tagFields: f}, nil
}

// EncodeSSCC returns the upper-case hex SSCC-96 encoding of the company prefix
// and serial reference (with extension digit). The reserved bits are 0.
func EncodeSSCC(filter FilterValue, companyPrefix, serialRef string) (string, error) {
	w, err := encodePartitioned(SSCC96, filter, companyPrefix, serialRef)
	if err != nil {
		return "", err
	}
	if err := w.PadTo(epc96NumBits); err != nil {
		return "", errors.WithMessage(err, "SSCC-96 reserved bits")
	}
	return finish(w)
}

// SSCCFromCode splits an SSCC into the parts of an SSCC Pure Identity URI.
//
// The SSCC is left-padded to 18 digits. Its first digit, the extension, moves
// to the front of the serial reference; its check digit is dropped.
func SSCCFromCode(sscc string, prefixLen int) (URN, error) {
	sscc, err := gs1Key(sscc, ssccStemDigits+1, prefixLen)
	if err != nil {
		return URN{}, err
	}
	return URN{
		Scheme:        SSCC96,
		CompanyPrefix: sscc[1 : 1+prefixLen],
		Reference:     sscc[:1] + sscc[1+prefixLen:ssccStemDigits],
	}, nil
}
