/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"strconv"

	"github.com/pkg/errors"
)

// SGLN is a GS1 Global Location Number plus an extension that identifies a
// sub-location.
type SGLN struct {
	tagFields
	extension uint64
}

func (SGLN) Scheme() Scheme {
	return SGLN96
}

func (SGLN) Header() byte {
	return SGLN96Header
}

// LocationReference returns the location reference, zero-padded to the
// number of digits its partition allows.
func (s SGLN) LocationReference() string {
	return s.reference
}

// Extension returns the GLN extension.
func (s SGLN) Extension() string {
	return strconv.FormatUint(s.extension, 10)
}

// Serial returns the extension; SGLN's third URI component.
func (s SGLN) Serial() string {
	return s.Extension()
}

// URI returns the EPC Pure Identity URI of the form
//	urn:epc:id:sgln:CompanyPrefix.LocationReference.Extension
func (s SGLN) URI() string {
	return pureURI(SGLN96, s.companyPrefix, s.reference, s.Extension())
}

func (s SGLN) Record() Record {
	r := s.record(SGLN96)
	r.LocationReference = s.reference
	r.Serial = s.Extension()
	r.URN = s.URI()
	return r
}

// DecodeSGLN decodes an SGLN-96 encoded EPC.
func DecodeSGLN(b []byte) (SGLN, error) {
	f, r, err := decodePartitioned(SGLN96, b)
	if err != nil {
		return SGLN{}, err
	}
	ext, err := r.ReadBits(serial96Len)
	if err != nil {
		return SGLN{}, err
	}
	return SGLN{tagFields: f, extension: ext}, nil
}

// EncodeSGLN returns the upper-case hex SGLN-96 encoding of the company
// prefix, location reference and extension.
func EncodeSGLN(filter FilterValue, companyPrefix, locationRef, extension string) (string, error) {
	ext, err := parseSerial(extension)
	if err != nil {
		return "", errors.WithMessage(err, "SGLN extension")
	}
	w, err := encodePartitioned(SGLN96, filter, companyPrefix, locationRef)
	if err != nil {
		return "", err
	}
	if err := w.WriteBits(ext, serial96Len); err != nil {
		return "", errors.WithMessage(err, "SGLN-96 extension")
	}
	return finish(w)
}

// SGLNFromGLN splits a GLN into the parts of an SGLN Pure Identity URI.
//
// The GLN is left-padded to 13 digits and its check digit is dropped. The
// location reference is zero-padded to the width the partition gives it.
func SGLNFromGLN(gln, extension string, prefixLen int) (URN, error) {
	gln, err := gs1Key(gln, gtinStemDigits, prefixLen)
	if err != nil {
		return URN{}, err
	}
	return URN{
		Scheme:        SGLN96,
		CompanyPrefix: gln[:prefixLen],
		Reference:     leftPad(gln[prefixLen:gtinStemDigits-1], gtinStemDigits-prefixLen),
		Serial:        extension,
	}, nil
}
