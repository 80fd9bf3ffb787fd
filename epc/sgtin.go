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

// SGTIN does not directly correspond to a GS1 identifier, but instead is a
// combination of a GS1 GTIN (global trade identification number) and a serial
// number to identify the specific instance of that GTIN.
//
// The GS1 General Specifications permit alphanumeric serials, but SGTIN-96
// only permits serial numbers consisting of digits '0'-'9' less than 2^38, with
// no leading '0's, except for a single '0'.
//
// The item reference's first digit is the GTIN indicator digit; the GTIN is
// the indicator, the company prefix, the rest of the item reference, and the
// check digit, in that order.
type SGTIN struct {
	tagFields
	serial uint64
}

func (SGTIN) Scheme() Scheme {
	return SGTIN96
}

func (SGTIN) Header() byte {
	return SGTIN96Header
}

// ItemReference returns the item reference, including its leading indicator
// digit, zero-padded to the number of digits its partition allows.
func (s SGTIN) ItemReference() string {
	return s.reference
}

// Indicator returns the GTIN indicator digit.
func (s SGTIN) Indicator() int {
	if s.reference == "" {
		return 0
	}
	return int(s.reference[0] - '0')
}

func (s SGTIN) Serial() string {
	return strconv.FormatUint(s.serial, 10)
}

// GTIN returns the GS1 GTIN-14 element string represented by this SGTIN.
func (s SGTIN) GTIN() string {
	stem := s.companyPrefix
	if s.reference != "" {
		stem = s.reference[:1] + s.companyPrefix + s.reference[1:]
	}
	return GTIN14(stem)
}

// URI returns the EPC Pure Identity URI for this SGTIN, of the format:
//	urn:epc:id:sgtin:CompanyPrefix.ItemRefAndIndicator.SerialNumber
func (s SGTIN) URI() string {
	return pureURI(SGTIN96, s.companyPrefix, s.reference, s.Serial())
}

func (s SGTIN) Record() Record {
	r := s.record(SGTIN96)
	r.ItemReference = s.reference
	r.Serial = s.Serial()
	r.URN = s.URI()
	r.GTIN14 = s.GTIN()
	return r
}

// DecodeSGTIN decodes an SGTIN-96 encoded EPC.
//
// It returns an error if the data is not 12 bytes, has the wrong header, has
// an invalid partition, or if the company prefix or item reference have more
// digits than the partition permits.
func DecodeSGTIN(b []byte) (SGTIN, error) {
	f, r, err := decodePartitioned(SGTIN96, b)
	if err != nil {
		return SGTIN{}, err
	}
	serial, err := r.ReadBits(serial96Len)
	if err != nil {
		return SGTIN{}, err
	}
	return SGTIN{tagFields: f, serial: serial}, nil
}

// EncodeSGTIN returns the upper-case hex SGTIN-96 encoding of the given
// company prefix, item reference (with indicator digit) and serial.
//
// The company prefix's length selects the partition, so it must keep its
// leading '0's.
func EncodeSGTIN(filter FilterValue, companyPrefix, itemRef, serial string) (string, error) {
	sn, err := parseSerial(serial)
	if err != nil {
		return "", err
	}
	w, err := encodePartitioned(SGTIN96, filter, companyPrefix, itemRef)
	if err != nil {
		return "", err
	}
	if err := w.WriteBits(sn, serial96Len); err != nil {
		return "", errors.WithMessage(err, "SGTIN-96 serial")
	}
	return finish(w)
}

// SGTINToGTIN14 is a convenience method for decoding an SGTIN-96 encoded EPC
// from a hex string to its corresponding GS1 GTIN-14.
func SGTINToGTIN14(epc string) (string, error) {
	b, err := ParseHex(epc)
	if err != nil {
		return "", err
	}
	s, err := DecodeSGTIN(b)
	if err != nil {
		return "", err
	}
	return s.GTIN(), nil
}

// SGTINFromGTIN splits a GTIN into the parts of an SGTIN Pure Identity URI.
//
// The GTIN is left-padded to 14 digits. Its first digit, the indicator, moves
// to the front of the item reference; its last digit, the check digit, is
// dropped.
func SGTINFromGTIN(gtin, serial string, prefixLen int) (URN, error) {
	gtin, err := gs1Key(gtin, gtinStemDigits+1, prefixLen)
	if err != nil {
		return URN{}, err
	}
	return URN{
		Scheme:        SGTIN96,
		CompanyPrefix: gtin[1 : 1+prefixLen],
		Reference:     gtin[:1] + gtin[1+prefixLen:gtinStemDigits],
		Serial:        serial,
	}, nil
}
